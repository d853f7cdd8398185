package model

type Branding struct {
	Logo    *string  `json:"logo,omitempty"`
	Colours *Colours `json:"colours,omitempty"`
}

type Colours struct {
	Foreground *string `json:"foreground,omitempty"`
	Background *string `json:"background,omitempty"`
	Accent     *string `json:"accent,omitempty"`
}

// BrandingUpdate is a partial branding change. Nil fields leave the stored value untouched.
type BrandingUpdate struct {
	Logo    *string
	Colours *Colours
}

// Apply overrides the branding field by field with every non-nil field of the update.
func (b Branding) Apply(update BrandingUpdate) Branding {
	merged := Branding{Logo: b.Logo}

	if b.Colours != nil {
		colours := *b.Colours
		merged.Colours = &colours
	}

	if update.Logo != nil {
		merged.Logo = update.Logo
	}

	if update.Colours == nil {
		return merged
	}

	if merged.Colours == nil {
		merged.Colours = &Colours{}
	}

	if update.Colours.Foreground != nil {
		merged.Colours.Foreground = update.Colours.Foreground
	}

	if update.Colours.Background != nil {
		merged.Colours.Background = update.Colours.Background
	}

	if update.Colours.Accent != nil {
		merged.Colours.Accent = update.Colours.Accent
	}

	return merged
}
