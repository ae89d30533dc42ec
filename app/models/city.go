package models

type City struct {
	Entity
	Name      string `gorm:"size:175;not null"`
	CountryID uint   `gorm:"index"`
	Country   Country
	Users     []User

	// ImagePath is the relative path of the uploaded city image under
	// the web-servable upload folder, nil when no image was uploaded.
	ImagePath *string `gorm:"size:255"`
}
