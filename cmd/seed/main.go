package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"furnex/internal/database"
	"furnex/internal/domain"
)

func main() {
	db, err := database.Connect("furnex.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to keep references clean)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM custom_size_forms")
	db.Exec("DELETE FROM photos")
	db.Exec("DELETE FROM parts")
	db.Exec("DELETE FROM furniture")
	db.Exec("DELETE FROM material_photos")
	db.Exec("DELETE FROM pattern_photos")
	db.Exec("DELETE FROM materials")
	db.Exec("DELETE FROM patterns")
	db.Exec("DELETE FROM colors")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	workerHash, _ := bcrypt.GenerateFromPassword([]byte("worker123"), bcrypt.DefaultCost)
	worker := domain.User{
		Email:        "worker@furnex.pl",
		PasswordHash: string(workerHash),
		Role:         domain.RoleWorker,
	}
	if err := db.Create(&worker).Error; err != nil {
		log.Fatal(err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	clientUser := domain.User{
		Email:        "anna.kowalska@example.com",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
	}
	if err := db.Create(&clientUser).Error; err != nil {
		log.Fatal(err)
	}

	clientProfile := domain.Client{
		UserID:   clientUser.ID,
		Name:     "Anna",
		Surname:  "Kowalska",
		Street:   "ul. Dluga 12",
		City:     "Gdansk",
		PostCode: "80-001",
		Phone:    "+48 600 100 200",
	}
	if err := db.Create(&clientProfile).Error; err != nil {
		log.Fatal(err)
	}

	// ================== CATALOG ==================
	log.Println("Creating catalog entries...")

	rooms := []domain.Room{
		{Name: "Living room"},
		{Name: "Bedroom"},
		{Name: "Kitchen"},
		{Name: "Office"},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	categories := []domain.Category{
		{Name: "Sofas"},
		{Name: "Tables"},
		{Name: "Wardrobes"},
		{Name: "Chairs"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	colors := []domain.Color{
		{Name: "Graphite", HexCode: "#383838"},
		{Name: "Oak", HexCode: "#C89F6B"},
		{Name: "Snow", HexCode: "#FAFAFA"},
	}
	for i := range colors {
		if err := db.Create(&colors[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	oak := domain.Material{Name: "Oak wood", Slug: "oak-wood"}
	if err := db.Create(&oak).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.MaterialPhoto{MaterialID: oak.ID, Path: "/uploads/materials/oak.jpg"}).Error; err != nil {
		log.Fatal(err)
	}

	linen := domain.Material{Name: "Linen fabric", Slug: "linen-fabric"}
	if err := db.Create(&linen).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.MaterialPhoto{MaterialID: linen.ID, Path: "/uploads/materials/linen.jpg"}).Error; err != nil {
		log.Fatal(err)
	}

	herringbone := domain.Pattern{Name: "Herringbone", Slug: "herringbone"}
	if err := db.Create(&herringbone).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.PatternPhoto{PatternID: herringbone.ID, Path: "/uploads/patterns/herringbone.jpg"}).Error; err != nil {
		log.Fatal(err)
	}

	plain := domain.Pattern{Name: "Plain", Slug: "plain"}
	if err := db.Create(&plain).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.PatternPhoto{PatternID: plain.ID, Path: "/uploads/patterns/plain.jpg"}).Error; err != nil {
		log.Fatal(err)
	}

	// ================== FURNITURE ==================
	log.Println("Creating furniture...")

	armrest := domain.Part{
		Name:       "Armrest",
		Count:      2,
		Price:      120,
		ColorID:    colors[0].ID,
		MaterialID: oak.ID,
		PatternID:  plain.ID,
	}
	if err := db.Create(&armrest).Error; err != nil {
		log.Fatal(err)
	}

	sofa := domain.PieceOfFurniture{
		Name:        "Gdansk three-seater",
		Description: "Three-seater sofa with an oak frame and linen upholstery.",
		Size:        "220x95x88 cm",
		Price:       2499,
		Count:       4,
		CategoryID:  categories[0].ID,
		RoomID:      rooms[0].ID,
		ColorID:     colors[0].ID,
		MaterialID:  linen.ID,
		PatternID:   plain.ID,
	}
	if err := db.Create(&sofa).Error; err != nil {
		log.Fatal(err)
	}
	if err := db.Create(&domain.Photo{PieceOfFurnitureID: sofa.ID, Path: "/uploads/furniture/sofa-front.jpg"}).Error; err != nil {
		log.Fatal(err)
	}
	armrest.PieceOfFurnitureID = &sofa.ID
	if err := db.Save(&armrest).Error; err != nil {
		log.Fatal(err)
	}

	// ================== CUSTOM SIZE ==================
	log.Println("Creating custom size forms...")

	pending := domain.CustomSizeForm{
		ClientID:    clientProfile.ID,
		Width:       180,
		Height:      75,
		Depth:       90,
		Description: "Desk sized for an alcove in the office.",
		Status:      domain.CustomSizePending,
	}
	if err := db.Create(&pending).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Seed finished.")
	log.Println("  worker login: worker@furnex.pl / worker123")
	log.Println("  client login: anna.kowalska@example.com / client123")
}
