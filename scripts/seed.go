package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"pdv_backend/internal/config"
	"pdv_backend/internal/database"
	"pdv_backend/internal/models"
)

// Seeds the catalog with the starting menu. Intended for a fresh database;
// rerunning it duplicates rows.
func main() {
	fmt.Println("Seeding database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	products := []models.Product{
		{Name: "XR Burguer", Price: decimal.NewFromFloat(18.00), Category: "Lanches", Active: true},
		{Name: "XR Salada", Price: decimal.NewFromFloat(20.00), Category: "Lanches", Active: true},
		{Name: "XR Bacon", Price: decimal.NewFromFloat(23.00), Category: "Lanches", Active: true},
		{Name: "Batata Frita", Price: decimal.NewFromFloat(12.00), Category: "Porções", Active: true},
		{Name: "Refrigerante Lata", Price: decimal.NewFromFloat(6.00), Category: "Bebidas", Active: true},
		{Name: "Suco Natural", Price: decimal.NewFromFloat(8.00), Category: "Bebidas", Active: true},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}

	addOns := []models.AddOn{
		{Name: "Bacon Extra", Price: decimal.NewFromFloat(4.00), Active: true},
		{Name: "Queijo Extra", Price: decimal.NewFromFloat(3.00), Active: true},
		{Name: "Ovo", Price: decimal.NewFromFloat(2.50), Active: true},
		{Name: "Sem Cebola", Price: decimal.NewFromFloat(0.00), Active: true},
	}
	if err := db.Create(&addOns).Error; err != nil {
		log.Fatal("Failed to seed add-ons:", err)
	}

	fmt.Printf("Seeded %d products and %d add-ons\n", len(products), len(addOns))
}
