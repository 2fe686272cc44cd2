package distance

type matrixResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Rows         []matrixRow `json:"rows"`
}

type matrixRow struct {
	Elements []matrixElement `json:"elements"`
}

type matrixElement struct {
	Status   string      `json:"status"`
	Distance *valueField `json:"distance,omitempty"`
}

type valueField struct {
	Value int64  `json:"value"` // метры
	Text  string `json:"text"`
}
