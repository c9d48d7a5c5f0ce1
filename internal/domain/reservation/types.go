package reservation

type Status string

const (
	StatusSuccessful Status = "successful"
	StatusCancelled  Status = "cancelled"
)

var statusNames = map[Status]string{
	StatusSuccessful: "Successful",
	StatusCancelled:  "Cancelled",
}

func (s Status) String() string {
	return string(s)
}

func (s Status) DisplayName() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}
