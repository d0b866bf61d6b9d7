package content

import "time"

// Patches carry only the fields an admin supplied; nil means "leave unchanged".

type ServicePatch struct {
	Title          *string
	Description    *string
	Flower         *string
	FlowerMeaning  *string
	TargetAudience *string
	Duration       *string
	Price          *string
	Details        *string
	ImageURL       *string
	DisplayOrder   *int
	IsActive       *bool
}

func (p ServicePatch) ToMap() map[string]any {
	updates := make(map[string]any)
	setIf(updates, "title", p.Title)
	setIf(updates, "description", p.Description)
	setIf(updates, "flower", p.Flower)
	setIf(updates, "flower_meaning", p.FlowerMeaning)
	setIf(updates, "target_audience", p.TargetAudience)
	setIf(updates, "duration", p.Duration)
	setIf(updates, "price", p.Price)
	setIf(updates, "details", p.Details)
	setIf(updates, "image_url", p.ImageURL)
	setIf(updates, "display_order", p.DisplayOrder)
	setIf(updates, "is_active", p.IsActive)
	return updates
}

type ProjectPatch struct {
	Title        *string
	Location     *string
	Description  *string
	ImageURL     *string
	Date         *time.Time
	DisplayOrder *int
	IsActive     *bool
}

func (p ProjectPatch) ToMap() map[string]any {
	updates := make(map[string]any)
	setIf(updates, "title", p.Title)
	setIf(updates, "location", p.Location)
	setIf(updates, "description", p.Description)
	setIf(updates, "image_url", p.ImageURL)
	setIf(updates, "date", p.Date)
	setIf(updates, "display_order", p.DisplayOrder)
	setIf(updates, "is_active", p.IsActive)
	return updates
}

type TeamMemberPatch struct {
	Name         *string
	Role         *string
	Bio          *string
	ImageURL     *string
	DisplayOrder *int
	IsActive     *bool
}

func (p TeamMemberPatch) ToMap() map[string]any {
	updates := make(map[string]any)
	setIf(updates, "name", p.Name)
	setIf(updates, "role", p.Role)
	setIf(updates, "bio", p.Bio)
	setIf(updates, "image_url", p.ImageURL)
	setIf(updates, "display_order", p.DisplayOrder)
	setIf(updates, "is_active", p.IsActive)
	return updates
}

func setIf[T any](m map[string]any, column string, v *T) {
	if v != nil {
		m[column] = *v
	}
}
