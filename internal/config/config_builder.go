package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withEnv reads the env-tagged fields of [StructuredConfig] from envVars.
func (b *configBuilder) withEnv(envVars map[string]string) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, envVars); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withServices resolves the credentials of every service the gateway calls
// from envVars.
func (b *configBuilder) withServices(envVars map[string]string) *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		API: API{Key: ResolveService(ServiceAPI, envVars).Key},
		Services: Services{
			Mail: ResolveService(ServiceMail, envVars),
			User: UserService{ServiceCredential: ResolveService(ServiceUser, envVars)},
		},
	})
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
