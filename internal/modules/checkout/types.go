package checkout

type dreamDTO struct {
	Dream string `json:"dream"`
}

type createResponse struct {
	URL string `json:"url"`
}

type verifyResponse struct {
	Paid        bool   `json:"paid"`
	Dream       string `json:"dream"`
	Currency    string `json:"currency"`
	AmountTotal int64  `json:"amount_total"`
}

type paidOnlyResponse struct {
	Paid bool `json:"paid"`
}
