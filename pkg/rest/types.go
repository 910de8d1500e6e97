// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// ClassifyNumberResponse Свойства числа и факт о нём
type ClassifyNumberResponse struct {
	Number     int64    `json:"number"`
	IsPrime    bool     `json:"is_prime"`
	IsPerfect  bool     `json:"is_perfect"`
	Properties []string `json:"properties"`
	DigitSum   uint64   `json:"digit_sum"`
	FunFact    string   `json:"fun_fact"`
}

// Health Состояние сервиса
type Health struct {
	Status string `json:"status"`
}

// Documentation Краткое описание API
type Documentation struct {
	Message       string `json:"message"`
	Endpoint      string `json:"endpoint"`
	Example       string `json:"example"`
	Documentation string `json:"documentation"`
}
