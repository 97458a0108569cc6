package order

import "strings"

type SkuCode struct {
	value string
}

func NewSkuCode(s string) (SkuCode, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return SkuCode{}, ErrEmptySkuCode
	}
	return SkuCode{value: t}, nil
}

func (s SkuCode) String() string { return s.value }

type Quantity struct {
	value int
}

func NewQuantity(v int) (Quantity, error) {
	if v <= 0 {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() int { return q.value }

// Customer holds the contact details needed to confirm and ship an order.
type Customer struct {
	name            string
	email           string
	phone           string
	shippingAddress string
}

func NewCustomer(name, email, phone, shippingAddress string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	shippingAddress = strings.TrimSpace(shippingAddress)

	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if email == "" || !strings.Contains(email, "@") {
		return Customer{}, ErrInvalidCustomerEmail
	}
	if phone == "" {
		return Customer{}, ErrEmptyCustomerPhone
	}
	if shippingAddress == "" {
		return Customer{}, ErrEmptyShippingAddress
	}

	return Customer{
		name:            name,
		email:           email,
		phone:           phone,
		shippingAddress: shippingAddress,
	}, nil
}

func (c Customer) Name() string            { return c.name }
func (c Customer) Email() string           { return c.email }
func (c Customer) Phone() string           { return c.phone }
func (c Customer) ShippingAddress() string { return c.shippingAddress }
