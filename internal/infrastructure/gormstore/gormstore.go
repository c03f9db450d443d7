// Package gormstore implementa los puertos de persistencia sobre GORM con
// SQLite: el mismo contrato que el adaptador pgx, en un archivo único, para
// despliegues pequeños sin servidor de base de datos.
package gormstore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open abre (o crea) la base SQLite en path y migra el esquema. Los IDs los
// asigna el autoincrement de SQLite, no un contador leído por la aplicación.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.AutoMigrate(&clientModel{}, &activityModel{}, &serviceCodeModel{}); err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return db, nil
}
