package entities

type Book struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Title           string  `gorm:"index;size:255;not null" json:"title" validate:"required,max=255"`
	Author          string  `gorm:"index;size:100;not null" json:"author" validate:"required,max=100"`
	ISBN            *string `gorm:"size:20" json:"isbn,omitempty" validate:"omitempty,max=20"`
	CoverImageURL   *string `gorm:"size:2048" json:"cover_image_url,omitempty" validate:"omitempty,max=2048"`
	PublicationYear *int    `json:"publication_year,omitempty"`
}

// Tag names are unique by catalog convention only; nothing below the
// validation layer enforces it.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;size:50;not null" json:"name" validate:"required,max=50"`
}

// BookTag is the Book<->Tag association. The composite primary key is what
// makes assigning the same tag twice a no-op.
type BookTag struct {
	BookID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false"`
	Book   Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Tag    Tag  `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

func (Book) TableName() string {
	return "books"
}

func (Tag) TableName() string {
	return "tags"
}

func (BookTag) TableName() string {
	return "book_tags"
}
