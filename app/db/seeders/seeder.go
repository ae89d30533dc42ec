package seeders

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dtezcan/go-catalog/app/configs"
	"github.com/dtezcan/go-catalog/app/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// table wipe order respects foreign keys: join rows and children first
var seedTables = []string{
	"product_stores",
	"stores",
	"products",
	"categories",
	"user_roles",
	"roles",
	"users",
	"groups",
	"cities",
	"countries",
}

// Seed wipes every table and loads the demo data set. Identity columns
// restart from 1 so the seeded rows have stable ids.
func Seed(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	for _, table := range seedTables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to wipe table %s: %w", table, err)
		}
		if err := tx.Exec("UPDATE sqlite_sequence SET seq = 0 WHERE name = ?", table).Error; err != nil {
			return fmt.Errorf("failed to reset sequence of %s: %w", table, err)
		}
	}

	if err := seedStores(tx); err != nil {
		return err
	}
	if err := seedCatalog(tx); err != nil {
		return err
	}
	if err := seedRolesAndUsers(tx); err != nil {
		return err
	}
	if err := seedCountries(tx); err != nil {
		return err
	}

	cleanUploadDir()

	log.Info().Msg("database seeded")
	return nil
}

func seedStores(tx *gorm.DB) error {
	stores := []models.Store{
		{Name: "Migros", IsVirtual: false},
		{Name: "Trendyol", IsVirtual: true},
		{Name: "MediaMarkt", IsVirtual: false},
		{Name: "LC Waikiki", IsVirtual: false},
		{Name: "Ilac Sepeti", IsVirtual: false},
		{Name: "Hepsiburada", IsVirtual: true},
	}
	if err := tx.Create(&stores).Error; err != nil {
		return fmt.Errorf("failed to seed stores: %w", err)
	}
	return nil
}

func seedCatalog(tx *gorm.DB) error {
	storeID := func(name string) (uint, error) {
		var store models.Store
		if err := tx.Where("name = ?", name).First(&store).Error; err != nil {
			return 0, fmt.Errorf("failed to look up store %s: %w", name, err)
		}
		return store.ID, nil
	}

	ids := make(map[string]uint)
	for _, name := range []string{"Migros", "Trendyol", "MediaMarkt", "LC Waikiki", "Ilac Sepeti", "Hepsiburada"} {
		id, err := storeID(name)
		if err != nil {
			return err
		}
		ids[name] = id
	}

	intPtr := func(v int) *int { return &v }
	datePtr := func(year int, month time.Month, day int) *time.Time {
		value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &value
	}
	joins := func(names ...string) []models.ProductStore {
		rows := make([]models.ProductStore, 0, len(names))
		for _, name := range names {
			rows = append(rows, models.ProductStore{StoreID: ids[name]})
		}
		return rows
	}

	categories := []models.Category{
		{
			Title:       "Electronics",
			Description: "Latest technology products and gadgets.",
			Products: []models.Product{
				{
					Name:          "Laptop",
					UnitPrice:     decimal.NewFromInt(15000),
					StockAmount:   intPtr(25),
					ProductStores: joins("MediaMarkt", "Hepsiburada"),
				},
				{
					Name:          "Smartphone",
					UnitPrice:     decimal.NewFromInt(8000),
					StockAmount:   intPtr(50),
					ProductStores: joins("Trendyol", "MediaMarkt", "Hepsiburada"),
				},
				{
					Name:          "Headphones",
					UnitPrice:     decimal.NewFromInt(1200),
					StockAmount:   intPtr(100),
					ProductStores: joins("MediaMarkt"),
				},
			},
		},
		{
			Title:       "Home Appliances",
			Description: "Kitchen and household appliances.",
			Products: []models.Product{
				{
					Name:      "Microwave Oven",
					UnitPrice: decimal.NewFromInt(3500),
				},
				{
					Name:          "Refrigerator",
					UnitPrice:     decimal.NewFromInt(12000),
					StockAmount:   intPtr(15),
					ProductStores: joins("Migros"),
				},
				{
					Name:          "Washing Machine",
					UnitPrice:     decimal.NewFromInt(9500),
					StockAmount:   intPtr(20),
					ProductStores: joins("Migros", "Hepsiburada"),
				},
			},
		},
		{
			Title:       "Clothing",
			Description: "Men's, women's, and children's clothing.",
			Products: []models.Product{
				{
					Name:          "T-shirt",
					UnitPrice:     decimal.NewFromInt(150),
					StockAmount:   intPtr(200),
					ProductStores: joins("LC Waikiki"),
				},
				{
					Name:          "Jeans",
					UnitPrice:     decimal.NewFromInt(350),
					StockAmount:   intPtr(150),
					ProductStores: joins("LC Waikiki", "Trendyol"),
				},
				{
					Name:          "Winter Jacket",
					UnitPrice:     decimal.NewFromInt(750),
					StockAmount:   intPtr(80),
					ProductStores: joins("LC Waikiki", "Hepsiburada", "Trendyol"),
				},
			},
		},
		{
			Title:       "Medicine",
			Description: "Pharmaceutical products and medication.",
			Products: []models.Product{
				{
					Name:           "Pain Killer",
					UnitPrice:      decimal.NewFromInt(35),
					StockAmount:    intPtr(300),
					ExpirationDate: datePtr(2035, time.September, 19),
					ProductStores:  joins("Ilac Sepeti"),
				},
				{
					Name:           "Vitamin",
					UnitPrice:      decimal.NewFromInt(85),
					StockAmount:    intPtr(200),
					ExpirationDate: datePtr(2033, time.October, 29),
					ProductStores:  joins("Ilac Sepeti", "Migros"),
				},
			},
		},
	}
	if err := tx.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}

func seedRolesAndUsers(tx *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin},
		{Name: models.RoleUser},
	}
	if err := tx.Create(&roles).Error; err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}

	roleID := func(name string) (uint, error) {
		var role models.Role
		if err := tx.Where("name = ?", name).First(&role).Error; err != nil {
			return 0, fmt.Errorf("failed to look up role %s: %w", name, err)
		}
		return role.ID, nil
	}
	adminRoleID, err := roleID(models.RoleAdmin)
	if err != nil {
		return err
	}
	userRoleID, err := roleID(models.RoleUser)
	if err != nil {
		return err
	}

	hash := func(password string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash seed password: %w", err)
		}
		return string(hashed), nil
	}
	adminPassword, err := hash("admin")
	if err != nil {
		return err
	}
	userPassword, err := hash("user")
	if err != nil {
		return err
	}

	uintPtr := func(v uint) *uint { return &v }
	datePtr := func(year int, month time.Month, day int) *time.Time {
		value := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &value
	}

	group := models.Group{
		Title: "General",
		Users: []models.User{
			{
				UserName:         "admin",
				Password:         adminPassword,
				FirstName:        "Çağıl",
				LastName:         "Alsaç",
				Gender:           models.GenderMan,
				BirthDate:        datePtr(1980, time.August, 21),
				RegistrationDate: time.Now().UTC(),
				Score:            decimal.NewFromFloat(3.8),
				IsActive:         true,
				Address:          "Çankaya",
				CountryID:        uintPtr(1),
				CityID:           uintPtr(6),
				UserRoles:        []models.UserRole{{RoleID: adminRoleID}},
			},
			{
				UserName:         "user",
				Password:         userPassword,
				FirstName:        "Luna",
				LastName:         "Leo",
				Gender:           models.GenderWoman,
				BirthDate:        datePtr(2004, time.September, 13),
				RegistrationDate: time.Now().UTC(),
				Score:            decimal.NewFromFloat(4.7),
				IsActive:         true,
				CountryID:        uintPtr(2),
				CityID:           uintPtr(82),
				UserRoles:        []models.UserRole{{RoleID: userRoleID}},
			},
		},
	}
	if err := tx.Create(&group).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

func seedCountries(tx *gorm.DB) error {
	turkishCities := []string{
		"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Amasya", "Ankara",
		"Antalya", "Artvin", "Aydın", "Balıkesir", "Bilecik", "Bingöl",
		"Bitlis", "Bolu", "Burdur", "Bursa", "Çanakkale", "Çankırı",
		"Çorum", "Denizli", "Diyarbakır", "Edirne", "Elazığ", "Erzincan",
		"Erzurum", "Eskişehir", "Gaziantep", "Giresun", "Gümüşhane",
		"Hakkari", "Hatay", "Isparta", "Mersin", "İstanbul", "İzmir",
		"Kars", "Kastamonu", "Kayseri", "Kırklareli", "Kırşehir",
		"Kocaeli", "Konya", "Kütahya", "Malatya", "Manisa",
		"Kahramanmaraş", "Mardin", "Muğla", "Muş", "Nevşehir", "Niğde",
		"Ordu", "Rize", "Sakarya", "Samsun", "Siirt", "Sinop", "Sivas",
		"Tekirdağ", "Tokat", "Trabzon", "Tunceli", "Şanlıurfa", "Uşak",
		"Van", "Yozgat", "Zonguldak", "Aksaray", "Bayburt", "Karaman",
		"Kırıkkale", "Batman", "Şırnak", "Bartın", "Ardahan", "Iğdır",
		"Yalova", "Karabük", "Kilis", "Osmaniye", "Düzce",
	}
	americanCities := []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
		"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
		"San Francisco", "Indianapolis", "Seattle", "Denver",
		"Washington", "Boston", "El Paso", "Nashville", "Detroit",
		"Oklahoma City", "Portland", "Las Vegas", "Memphis",
		"Louisville", "Baltimore", "Milwaukee", "Albuquerque", "Tucson",
		"Fresno", "Mesa", "Sacramento", "Atlanta", "Kansas City",
		"Colorado Springs", "Miami", "Raleigh", "Omaha", "Long Beach",
		"Virginia Beach", "Oakland", "Minneapolis", "Tulsa", "Arlington",
		"New Orleans",
	}

	cityList := func(names []string) []models.City {
		cities := make([]models.City, 0, len(names))
		for _, name := range names {
			cities = append(cities, models.City{Name: name})
		}
		return cities
	}

	countries := []models.Country{
		{Name: "Türkiye", Cities: cityList(turkishCities)},
		{Name: "United States of America", Cities: cityList(americanCities)},
		// a country without cities keeps the left join listing honest
		{Name: "China"},
	}
	if err := tx.Create(&countries).Error; err != nil {
		return fmt.Errorf("failed to seed countries: %w", err)
	}
	return nil
}

// cleanUploadDir deletes leftover uploaded files; seeded rows reference
// none of them.
func cleanUploadDir() {
	entries, err := os.ReadDir(configs.LoadENV.UploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("failed to read upload folder")
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(configs.LoadENV.UploadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to delete uploaded file")
		}
	}
}
