package entities

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Person struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Alias     string
	FirstName string
	LastName  string
	Password  string
	IsAdmin   bool
}

func NewPerson(email, alias, firstName, lastName, password string) *Person {
	return &Person{
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Alias:     strings.TrimSpace(alias),
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		IsAdmin:   false,
	}
}

func (p *Person) validate() error {
	if p.Email == "" {
		return errors.New("email must not be empty")
	}
	if !strings.Contains(p.Email, "@") {
		return errors.New("email must contain @")
	}
	if p.Alias == "" {
		return errors.New("alias must not be empty")
	}
	if p.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

func (p *Person) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Password = string(hashedPassword)
	return nil
}

func (p *Person) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password))
}

func (p *Person) UpdateProfile(firstName, lastName string) error {
	p.FirstName = firstName
	p.LastName = lastName
	p.UpdatedAt = time.Now()
	return p.validate()
}
