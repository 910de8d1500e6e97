package entity

// Property тег свойства числа в ответе.
type Property string

const (
	PropertyArmstrong Property = "armstrong"
	PropertyEven      Property = "even"
	PropertyOdd       Property = "odd"
)

func (p Property) String() string {
	return string(p)
}

// Classification результат классификации одного числа. Создаётся один раз на
// запрос и дальше не меняется.
type Classification struct {
	Number    int64
	IsPrime   bool
	IsPerfect bool
	// Properties: armstrong (если есть), затем ровно одно из even/odd.
	Properties []Property
	DigitSum   uint64
	FunFact    string
}
