package config

// Store holds the live configuration and the file it came from.
// Preference toggles are written back to the file.
type Store struct {
	path string
	cfg  Config
}

// Open loads the configuration at path into a new Store
func Open(path string) (*Store, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, cfg: cfg}, nil
}

// NewStore wraps an in-memory configuration. An empty path disables saving.
func NewStore(path string, cfg Config) *Store {
	return &Store{path: path, cfg: cfg}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Config returns a copy of the current configuration
func (s *Store) Config() Config {
	return s.cfg
}

// Splash reports whether the startup splash logo is enabled
func (s *Store) Splash() bool {
	return s.cfg.UI.Splash
}

// VersionCheck reports whether release checks are enabled
func (s *Store) VersionCheck() bool {
	return s.cfg.Release.Check
}

// ReleaseSite returns where users read about new releases
func (s *Store) ReleaseSite() string {
	return s.cfg.Release.Site
}

// SetSplash toggles the splash logo and persists the change
func (s *Store) SetSplash(on bool) error {
	s.cfg.UI.Splash = on
	return s.save()
}

// SetVersionCheck toggles release checks and persists the change
func (s *Store) SetVersionCheck(on bool) error {
	s.cfg.Release.Check = on
	return s.save()
}

// Reload re-reads the backing file. On error the current values are kept.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	return Save(s.path, s.cfg)
}
