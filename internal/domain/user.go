package domain

// User is an account with a shopping basket of needs. Password holds the
// stored digest, never the plaintext.
type User struct {
	ID         int          `json:"id"`
	UserName   string       `json:"userName"`
	Role       Role         `json:"role"`
	Basket     []BasketNeed `json:"basket"`
	Password   string       `json:"password"`
	Security   []string     `json:"security"`
	Restricted bool         `json:"restricted"`
}

// NewUser builds a fresh user with an empty basket and the role derived from
// the username.
func NewUser(id int, userName, passwordDigest string, security []string) *User {
	return &User{
		ID:       id,
		UserName: userName,
		Role:     RoleForUserName(userName),
		Basket:   []BasketNeed{},
		Password: passwordDigest,
		Security: security,
	}
}

// AddNeed appends a new basket line with count 1 holding a copy of the need.
// It does not merge with an existing line for the same need; duplicate guards
// live with the caller.
func (u *User) AddNeed(need Need) {
	u.Basket = append(u.Basket, BasketNeed{Need: need, Count: 1})
}

// RemoveNeed drops every basket line whose embedded need id matches.
func (u *User) RemoveNeed(need Need) {
	kept := u.Basket[:0]
	for _, b := range u.Basket {
		if b.Need.ID != need.ID {
			kept = append(kept, b)
		}
	}
	u.Basket = kept
}

// FindBasketNeed returns the first basket line whose embedded need id
// matches, or nil.
func (u *User) FindBasketNeed(need Need) *BasketNeed {
	for i := range u.Basket {
		if u.Basket[i].Need.ID == need.ID {
			return &u.Basket[i]
		}
	}
	return nil
}

// HasNeed reports whether any basket line matches the need's id.
func (u *User) HasNeed(need Need) bool {
	return u.FindBasketNeed(need) != nil
}
