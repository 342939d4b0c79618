// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// EnvironmentDevelopment marks a development deployment.
	EnvironmentDevelopment = "development"

	// EnvironmentProduction marks a production deployment.
	EnvironmentProduction = "production"

	// DriverPostgres is the pgx database/sql driver name.
	DriverPostgres = "pgx"

	// DriverSQLite is the go-sqlite3 database/sql driver name.
	DriverSQLite = "sqlite3"
)

// defaultConfig holds the values used when no source sets a field.
// Secrets (token sign key, DSN, seed passwords) intentionally have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "wildlife-service",
			TokenDuration: time.Hour,
			BcryptCost:    10,
			Environment:   EnvironmentProduction,
		},
		Seed: Seed{
			AdminEmail: "admin@example.com",
			UserEmail:  "user@example.com",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
			Files: Files{
				UploadDir: "uploads",
			},
		},
		Server: Server{
			RequestTimeout: time.Minute,
			MaxUploadSize:  5 << 20,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			DetectorURL:    "http://localhost:8000/detect/",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			ImportInterval: 10 * time.Second,
			SweepMaxAge:    time.Hour,
		},
	}
}
