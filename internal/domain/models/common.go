package models

// Letterhead (brevhoved) is printed on documents of an accounting.
type Letterhead struct {
	Number        int    `gorm:"primaryKey;autoIncrement:false" json:"number"`
	Name          string `gorm:"type:varchar(256);not null" json:"name"`
	Line1         string `gorm:"type:varchar(64);not null" json:"line1"`
	Line2         string `gorm:"type:varchar(64)" json:"line2"`
	Line3         string `gorm:"type:varchar(64)" json:"line3"`
	Line4         string `gorm:"type:varchar(64)" json:"line4"`
	Line5         string `gorm:"type:varchar(64)" json:"line5"`
	Line6         string `gorm:"type:varchar(64)" json:"line6"`
	Line7         string `gorm:"type:varchar(64)" json:"line7"`
	CompanyNumber string `gorm:"type:varchar(32)" json:"company_number"`
}
