package model

// Selection is the active dashboard filter. It is a value type so every
// filter and aggregate call sees a stable copy.
type Selection struct {
	Zone   string `json:"zone"`
	Period string `json:"period"`
	Shift  string `json:"shift"`
}

func DefaultSelection() Selection {
	return Selection{Zone: "all", Period: "30days", Shift: "all"}
}

func (s Selection) IsAllZones() bool {
	return s.Zone == "" || s.Zone == "all"
}

// SelectionInput is the raw query string form of a Selection.
type SelectionInput struct {
	Zone   string `query:"zone" validate:"max=64"`
	Period string `query:"period" validate:"max=16"`
	Shift  string `query:"shift" validate:"omitempty,oneof=all Pagi Siang Sore"`
}

type LocationQuery struct {
	Filter string `query:"filter" validate:"omitempty,oneof=all hub high-traffic office mall transport"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=500"`
	Page   *int   `query:"page" validate:"omitempty,min=1,max=100000"`
}

type ExportMailInput struct {
	To      []string `json:"to" validate:"required,min=1,dive,required,email"`
	Subject string   `json:"subject" validate:"max=200"`
	Note    string   `json:"note" validate:"max=2000"`
}
