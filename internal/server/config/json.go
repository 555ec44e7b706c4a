package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/flagx"
	"github.com/dmitrijs2005/passkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
// Absent fields keep the value already present in Config.
type JsonConfig struct {
	EndpointAddrGRPC              *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                   *string         `json:"database_dsn"`
	EncryptionKey                 *string         `json:"encryption_key"`
	TokenSecretKey                *string         `json:"token_secret_key"`
	HashCost                      *int            `json:"hash_cost"`
	SessionTokenValidityDuration  *timex.Duration `json:"session_token_validity_duration"`
	RecoveryTokenValidityDuration *timex.Duration `json:"recovery_token_validity_duration"`
	RedisAddr                     *string         `json:"redis_addr"`
	S3RootUser                    *string         `json:"s3_root_user"`
	S3RootPassword                *string         `json:"s3_root_password"`
	S3Bucket                      *string         `json:"s3_bucket"`
	S3Region                      *string         `json:"s3_region"`
	S3BaseEndpoint                *string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flag. Without the flag nothing is loaded. An unreadable file
// or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.EncryptionKey, c.EncryptionKey)
	setString(&config.TokenSecretKey, c.TokenSecretKey)
	if c.HashCost != nil {
		config.HashCost = *c.HashCost
	}
	setDuration(&config.SessionTokenValidityDuration, c.SessionTokenValidityDuration)
	setDuration(&config.RecoveryTokenValidityDuration, c.RecoveryTokenValidityDuration)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *timex.Duration) {
	if v != nil {
		*dst = v.Duration
	}
}
