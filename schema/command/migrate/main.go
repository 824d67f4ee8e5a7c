package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/flo-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("flo")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}
	defer db.Close()

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS flo`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO flo").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.CareTeamMember{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.CareTeamMember{}).
		AddIndex("care_team_members_doctor_id", "doctor_id").Error; err != nil {
		panic(err)
	}

	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()
}
