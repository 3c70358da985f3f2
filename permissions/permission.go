package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission maps one route to the roles allowed to call it. A route
// absent from the file carries no role restriction.
type Permission struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Permissions []string `json:"permissions"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Skip      bool         `json:"skip"`
	Endpoints []Permission `json:"endpoints"`
}

func (p *PermissionData) FindPermissions(path, method string) Permission {
	idx := slices.IndexFunc(p.Endpoints, func(entry Permission) bool {
		return entry.Path == path && entry.Method == method
	})
	if idx < 0 {
		return Permission{}
	}

	return p.Endpoints[idx]
}

func Get() *PermissionData {
	var data PermissionData
	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded role permissions")

	return &data
}
