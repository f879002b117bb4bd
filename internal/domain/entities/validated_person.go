package entities

type ValidatedPerson struct {
	*Person
}

func NewValidatedPerson(person *Person) (*ValidatedPerson, error) {
	if err := person.validate(); err != nil {
		return nil, err
	}

	return &ValidatedPerson{Person: person}, nil
}

func (vp *ValidatedPerson) GetPerson() *Person {
	return vp.Person
}

func (vp *ValidatedPerson) UpdateProfile(firstName, lastName string) error {
	if err := vp.Person.UpdateProfile(firstName, lastName); err != nil {
		return err
	}

	return nil
}
