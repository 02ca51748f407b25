package store

const (
	deleteNotesForUser = `DELETE FROM notas_cache WHERE user_id = ?;`

	insertCachedNote = `INSERT INTO notas_cache (user_id, note_id, titulo, descripcion, position)
    VALUES (?, ?, ?, ?, ?);`

	selectNotesForUser = `SELECT note_id, titulo, descripcion
    FROM notas_cache
    WHERE user_id = ?
    ORDER BY position;`
)
