package usecase

import "github.com/google/uuid"

// isUUID reporta si s tiene forma de UUID. Las columnas de id son UUID: un id
// mal formado nunca puede existir, así que se trata como "no encontrado" antes
// de llegar al driver (un cast inválido no es ErrNoRows para PostgreSQL).
func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// dedupe devuelve los ids sin repetidos, preservando el orden de aparición.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
