package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/pinpoint-labs/pinpoint-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("pinpoint")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS pinpoint`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO pinpoint").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.User{},
		&schema.Point{},
		&schema.UserPoint{},
	).Error; err != nil {
		panic(err)
	}

	// authoritative uniqueness constraints; the application checks are
	// only a fast path
	if err := db.Model(&schema.Point{}).
		AddUniqueIndex("points_unique_coordinates", "latitude", "longitude").Error; err != nil {
		panic(err)
	}
	if err := db.Model(&schema.UserPoint{}).
		AddUniqueIndex("user_points_unique_pair", "user_id", "point_id").Error; err != nil {
		panic(err)
	}

	if err := db.Model(&schema.Point{}).
		AddForeignKey("user_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(&schema.UserPoint{}).
		AddForeignKey("user_id", "users(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
	if err := db.Model(&schema.UserPoint{}).
		AddForeignKey("point_id", "points(id)", "CASCADE", "CASCADE").Error; err != nil {
		panic(err)
	}
}
