package vehicle

// Type classifies a vehicle for capacity purposes. Adapted cars occupy the
// lot's dedicated adapted spaces first and may overflow into standard ones.
type Type string

const (
	TypeCar        Type = "car"
	TypeAdaptedCar Type = "adapted_car"
)

var typeNames = map[Type]string{
	TypeCar:        "Car",
	TypeAdaptedCar: "Adapted Car",
}

func (t Type) String() string {
	return string(t)
}

func (t Type) DisplayName() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

func (t Type) IsValid() bool {
	_, ok := typeNames[t]
	return ok
}
