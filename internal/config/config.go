package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host    string  `koanf:"host"`
	Budget  Budget  `koanf:"budget"`
	Session Session `koanf:"session"`
}

type Budget struct {
	// DefaultFrequency is the display frequency used when the caller does
	// not pick one.
	DefaultFrequency string `koanf:"defaultfrequency"`
	// RequireCategory rejects expenses without an explicit category instead
	// of falling back to "Uncategorized".
	RequireCategory bool `koanf:"requirecategory"`
	// Categories is the preloaded expense category list; custom categories
	// are added on top as expenses referencing them come in.
	Categories []string `koanf:"categories"`
}

type Session struct {
	// MaxIdleMinutes is how long an untouched session is kept before its
	// ledger is released. Zero disables eviction.
	MaxIdleMinutes int `koanf:"maxidleminutes"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: ":8080",
		Budget: Budget{
			DefaultFrequency: "Weekly",
			RequireCategory:  false,
			Categories: []string{
				"Food & Groceries",
				"Housing",
				"Transport",
				"Utilities",
				"Entertainment",
				"Personal Care",
				"Health",
				"Debt Payments",
				"Subscriptions",
				"Clothing",
				"Gifts/Donations",
				"Other",
			},
		},
		Session: Session{
			MaxIdleMinutes: 120,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "FINANCIO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "FINANCIO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
