package request

type MovieCreateRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=200"`
	OriginalTitle     *string  `json:"originalTitle,omitempty" validate:"omitempty,min=1,max=200"`
	Description       string   `json:"description" validate:"required"`
	DurationInMinutes int      `json:"duration" validate:"required,min=1"`
	ReleaseDate       string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Genres            []string `json:"genres" validate:"required,min=1,dive,genre"`
	CoverImageURL     *string  `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	ProductionBudget  string   `json:"productionBudget" validate:"required,decimal2"`
}

// MovieUpdateRequest is a partial payload; only supplied fields change.
// Record id and owner are not part of the payload shape at all.
type MovieUpdateRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	OriginalTitle     *string  `json:"originalTitle,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	DurationInMinutes *int     `json:"duration,omitempty" validate:"omitempty,min=1"`
	ReleaseDate       *string  `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genres            []string `json:"genres,omitempty" validate:"omitempty,min=1,dive,genre"`
	CoverImageURL     *string  `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	ProductionBudget  *string  `json:"productionBudget,omitempty" validate:"omitempty,decimal2"`
}
