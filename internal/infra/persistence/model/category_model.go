package model

// CategoryModel mirrors the 'categories' table. Categories are seeded and
// managed outside this service.
type CategoryModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// UserCategoryModel mirrors the 'user_categories' join table. The composite
// primary key makes duplicate associations impossible at the storage level,
// and the foreign keys reject associations to unknown users or categories.
type UserCategoryModel struct {
	UserID     uint64 `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint64 `gorm:"primaryKey;autoIncrement:false"`

	User     UserModel     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Category CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserCategoryModel) TableName() string {
	return "user_categories"
}
