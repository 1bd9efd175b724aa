package epaper

// BlockPatch is a partial update for a block. Every field is a pointer so
// that "clear this field" and "leave this field alone" stay distinguishable.
// A patch can never change a block's ID or kind; fields that do not apply to
// the target variant are ignored.
type BlockPatch struct {
	// Layout fields, valid for every variant.
	Width    *string `json:"width,omitempty"`
	Height   *string `json:"height,omitempty"`
	Rotation *int    `json:"rotation,omitempty"`
	X        *int    `json:"x,omitempty"`
	Y        *int    `json:"y,omitempty"`

	// Article fields.
	Headline        *string        `json:"headline,omitempty"`
	SubHeadline     *string        `json:"subHeadline,omitempty"`
	Content         *string        `json:"content,omitempty"`
	Byline          *string        `json:"byline,omitempty"`
	Category        *string        `json:"category,omitempty"`
	Location        *string        `json:"location,omitempty"`
	ArticleImageURL *string        `json:"articleImageUrl,omitempty"`
	TextAlignment   *TextAlignment `json:"textAlignment,omitempty"`
	FontSize        *string        `json:"fontSize,omitempty"`
	LineSpacing     *string        `json:"lineSpacing,omitempty"`

	// Image fields.
	ImageURL *string `json:"imageUrl,omitempty"`
	Caption  *string `json:"caption,omitempty"`

	// Ad fields.
	AdContent  *string `json:"adContent,omitempty"`
	AdImageURL *string `json:"adImageUrl,omitempty"`
	TargetURL  *string `json:"targetUrl,omitempty"`
}

func (p BlockPatch) applyLayout(l BlockLayout) BlockLayout {
	if p.Width != nil {
		l.Width = *p.Width
	}
	if p.Height != nil {
		l.Height = *p.Height
	}
	if p.Rotation != nil {
		l.Rotation = *p.Rotation
	}
	if p.X != nil {
		l.X = *p.X
	}
	if p.Y != nil {
		l.Y = *p.Y
	}
	return l
}

func (b ArticleBlock) applyPatch(p BlockPatch) Block {
	if p.Headline != nil {
		b.Headline = *p.Headline
	}
	if p.SubHeadline != nil {
		b.SubHeadline = *p.SubHeadline
	}
	if p.Content != nil {
		b.Content = *p.Content
	}
	if p.Byline != nil {
		b.Byline = *p.Byline
	}
	if p.Category != nil {
		b.Category = *p.Category
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.ArticleImageURL != nil {
		b.ArticleImageURL = *p.ArticleImageURL
	}
	if p.TextAlignment != nil {
		b.TextAlignment = *p.TextAlignment
	}
	if p.FontSize != nil {
		b.FontSize = *p.FontSize
	}
	if p.LineSpacing != nil {
		b.LineSpacing = *p.LineSpacing
	}
	b.BlockLayout = p.applyLayout(b.BlockLayout)
	return b
}

func (b ImageBlock) applyPatch(p BlockPatch) Block {
	if p.ImageURL != nil {
		b.ImageURL = *p.ImageURL
	}
	if p.Caption != nil {
		b.Caption = *p.Caption
	}
	b.BlockLayout = p.applyLayout(b.BlockLayout)
	return b
}

func (b AdBlock) applyPatch(p BlockPatch) Block {
	if p.AdContent != nil {
		b.AdContent = *p.AdContent
	}
	if p.AdImageURL != nil {
		b.AdImageURL = *p.AdImageURL
	}
	if p.TargetURL != nil {
		b.TargetURL = *p.TargetURL
	}
	b.BlockLayout = p.applyLayout(b.BlockLayout)
	return b
}
