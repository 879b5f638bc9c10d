// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// applyDefaults fills zero-valued tuning knobs with their defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = defaultMailTimeout
	}
	if cfg.Workers.MailWorkers <= 0 {
		cfg.Workers.MailWorkers = defaultMailWorkers
	}
	if cfg.Workers.MailQueueSize <= 0 {
		cfg.Workers.MailQueueSize = defaultMailQueueSize
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. All failing groups
// are reported at once.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Mail.APIURL != "" && cfg.Mail.From == "" {
		err = errors.Join(err, ErrInvalidMailConfigs)
	}

	return err
}
