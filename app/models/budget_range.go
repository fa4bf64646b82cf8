package models

// BudgetRange is an informational budget band shown on preference forms.
// The recommendation scoring compares raw budget numbers, never these bands.
type BudgetRange struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Key      string `gorm:"uniqueIndex;type:varchar(50);not null" json:"key"`
	MinValue int    `gorm:"not null" json:"min"`
	MaxValue int    `gorm:"not null" json:"max"`
	Label    string `gorm:"type:varchar(50);not null" json:"label"`
}
