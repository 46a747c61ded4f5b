package reading

type dreamDTO struct {
	Dream string `json:"dream"`
}

type shortReadingResponse struct {
	Text string `json:"text"`
}

type deepReadingResponse struct {
	Text     string   `json:"text"`
	Sections Sections `json:"sections"`
}
