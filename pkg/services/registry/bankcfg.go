package registry

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type cfgRegistry struct {
	cfg *ini.File
}

// NewConfigRegistry loads a bank profile file: one ini section per bank
// integration, e.g.
//
//	[bncr]
//	driver = mongo
//	uri = mongodb://localhost:27017
//	database = bncr_ledger
func NewConfigRegistry(path string) (ConfigRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles() ([]BankProfile, error) {
	var profiles []BankProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profile, err := profileFromSection(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(name string) (BankProfile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return BankProfile{}, fmt.Errorf("bank profile %q not found", name)
	}
	return profileFromSection(section)
}

func profileFromSection(section *ini.Section) (BankProfile, error) {
	driver := section.Key("driver").String()
	if driver == "" {
		return BankProfile{}, fmt.Errorf("bank profile %q has no driver", section.Name())
	}

	return BankProfile{
		Name:     section.Name(),
		Driver:   driver,
		URI:      section.Key("uri").String(),
		Database: section.Key("database").String(),
		DSN:      section.Key("dsn").String(),
		Function: section.Key("function").String(),
		Region:   section.Key("region").String(),
		BaseURL:  section.Key("base_url").String(),
	}, nil
}
