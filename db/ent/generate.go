package main

//go:generate go run .

import (
	"log"
	"os"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	// go generate runs with this package's directory as cwd; the schema and
	// target paths below are relative to the module root.
	if _, err := os.Stat("go.mod"); err != nil {
		if err := os.Chdir("../.."); err != nil {
			log.Fatal(err)
		}
	}
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/danielolaitan/invoice-agent/gen/ent",
			Schema:  "github.com/danielolaitan/invoice-agent/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
