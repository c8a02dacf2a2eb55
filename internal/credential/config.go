package credential

import "github.com/mrenard/pointage/internal/model"

// FillConfig resolves secrets the configuration file left empty from
// the given store. Lookup failures leave the fields empty; the remote
// clients then fail with an authentication error the user can act on.
func FillConfig(s *Store, cfg *model.Config) {
	if cfg.DefaultJira.Token == "" {
		if v, err := s.Get(KeyJiraToken); err == nil {
			cfg.DefaultJira.Token = v
		}
	}
	if cfg.DefaultJira.Tempo != nil && cfg.DefaultJira.Tempo.APIKey == "" {
		if v, err := s.Get(KeyTempoAPIKey); err == nil {
			cfg.DefaultJira.Tempo.APIKey = v
		}
	}
}
