package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string   `mapstructure:"PORT"`
	DatabasePath string   `mapstructure:"DATABASE_PATH"`
	AcademyName  string   `mapstructure:"ACADEMY_NAME"`
	EnabledTerms []string `mapstructure:"ENABLED_TERMS"`
	SeedRoles    bool     `mapstructure:"SEED_ROLES"`
	EnableCORS   bool     `mapstructure:"ENABLE_CORS"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "academy.db")
	viper.SetDefault("ACADEMY_NAME", "PSP Academy")
	viper.SetDefault("ENABLED_TERMS", []string{"2026-spring"})
	viper.SetDefault("SEED_ROLES", true)

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("ACADEMY_NAME")
	viper.BindEnv("ENABLED_TERMS")
	viper.BindEnv("SEED_ROLES")
	viper.BindEnv("ENABLE_CORS")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
