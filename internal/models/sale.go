package models

import "gorm.io/gorm"

// Sale links a Game to its regional and global unit-sales figures, in
// millions of units. Figures are optional; absence is not zero. Deleting
// the Game cascades to its Sale.
type Sale struct {
	gorm.Model
	Slug   string `gorm:"size:120;uniqueIndex;not null"`
	GameID uint   `gorm:"uniqueIndex;not null"`
	Game   Game   `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`

	NASales     *float64 `gorm:"column:na_sales"`
	EUSales     *float64 `gorm:"column:eu_sales"`
	JPSales     *float64 `gorm:"column:jp_sales"`
	OtherSales  *float64 `gorm:"column:other_sales"` // Rest of the world: Africa, Asia excluding Japan, Australia.
	GlobalSales *float64 `gorm:"column:global_sales"`
}

// DeriveSlug returns the canonical slug for the sale record, built from
// the owning game's slug. The Game must be populated.
func (s *Sale) DeriveSlug() string {
	return s.Game.Slug + "-sales"
}

// BeforeSave keeps the slug in sync with the owning game. The hook only
// fires a derivation when the association is loaded so partial updates
// through gorm don't blank the slug.
func (s *Sale) BeforeSave(tx *gorm.DB) error {
	if s.Game.Slug != "" {
		s.Slug = s.DeriveSlug()
	}
	return nil
}
