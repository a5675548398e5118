package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"edutech-usuarios-api/config"
)

// Seeds the roles the service cannot run without (CLIENTE is the
// default assignment target) plus an initial admin account.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	defaultDSN, _ := config.Load().DBDSN()
	dsn := flag.String("dsn", defaultDSN, "database url")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("DSN required via flag -dsn or POSTGRES_* env")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot ping DB:", err)
	}

	seedRoles(db)
	seedAdmin(db)
}

func seedRoles(db *sql.DB) {
	roles := []struct {
		nombre      string
		descripcion string
		permisos    []string
	}{
		{"CLIENTE", "Rol por defecto de los usuarios registrados", []string{"VER_USUARIO"}},
		{"ADMINISTRADOR", "Gestión completa de usuarios y roles", []string{"VER_USUARIO", "ELIMINAR_USUARIO", "GESTIONAR_PERMISO"}},
	}

	for _, r := range roles {
		var id uint64
		err := db.QueryRow(`
			INSERT INTO rol (nombre, descripcion)
			VALUES ($1, $2)
			ON CONFLICT (nombre) DO UPDATE SET descripcion = excluded.descripcion
			RETURNING id
		`, r.nombre, r.descripcion).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed rol %s: %v", r.nombre, err)
		}

		for _, p := range r.permisos {
			if _, err := db.Exec(`
				INSERT INTO rol_permisos (rol_id, permiso)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, id, p); err != nil {
				log.Fatalf("Failed to seed permiso %s: %v", p, err)
			}
		}

		fmt.Printf("Rol seeded: %s (id=%d)\n", r.nombre, id)
	}
}

func seedAdmin(db *sql.DB) {
	username := "admin"
	password := "administrador1"

	if v := os.Getenv("DB_ADMIN_USERNAME"); v != "" {
		username = v
	}
	if v := os.Getenv("DB_ADMIN_PASSWORD"); v != "" {
		password = v
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	var id uint64
	err := db.QueryRow(`
		INSERT INTO usuario (rut, primer_nomb, primer_apell, fecha_nacimiento, username, email, contrasena_hash, estado, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'ACTIVO', $8)
		ON CONFLICT (username) DO UPDATE SET contrasena_hash = excluded.contrasena_hash
		RETURNING id
	`, "11111111-1", "Admin", "EduTech", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), username, "admin@edutech.local", string(hashed), time.Now()).Scan(&id)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO usuario_roles (usuario_id, rol_id)
		SELECT $1, id FROM rol WHERE nombre = 'ADMINISTRADOR'
		ON CONFLICT DO NOTHING
	`, id); err != nil {
		log.Fatalf("Failed to assign admin rol: %v", err)
	}

	fmt.Printf("Admin seeded!\n   User: %s\n   Pass: %s\n", username, password)
}
