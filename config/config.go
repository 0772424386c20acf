package config

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	Origin  string       `json:"origin"`
	Port    string       `json:"port"`
	Version string       `json:"version"`
	Scylla  ScyllaConfig `json:"scylla"`
	Redis   RedisConfig  `json:"redis"`
	MinIO   MinIOConfig  `json:"minIO"`
}

// ScyllaConfig structure is the config for the ScyllaDB cluster
type ScyllaConfig struct {
	Hosts    []string `json:"hosts"`
	Keyspace string   `json:"keyspace"`
}

// RedisConfig structure is the config for the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

// MinIOConfig structure is the config for MinIO connection
type MinIOConfig struct {
	Endpoint string `json:"endpoint"`
	User     string `json:"user"`
	Password string `json:"password"`
}
