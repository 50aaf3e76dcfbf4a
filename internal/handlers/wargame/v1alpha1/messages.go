package v1alpha1

// DiceRoll is a recorded roll on the wire
type DiceRoll struct {
	RollId      string   `json:"roll_id"`
	Notation    string   `json:"notation"`
	Dice        []uint32 `json:"dice"`
	Total       uint32   `json:"total"`
	Purpose     string   `json:"purpose,omitempty"`
	Description string   `json:"description,omitempty"`
	RolledAt    int64    `json:"rolled_at"`
}

// RollDiceRequest asks for a roll of NdM notation
type RollDiceRequest struct {
	EntityId    string `json:"entity_id"`
	Context     string `json:"context"`
	Notation    string `json:"notation"`
	Description string `json:"description,omitempty"`
}

// RollDiceResponse carries the new roll and the whole session
type RollDiceResponse struct {
	Roll      *DiceRoll   `json:"roll"`
	Rolls     []*DiceRoll `json:"rolls"`
	ExpiresAt int64       `json:"expires_at"`
}

// WeaponProfile is a datasheet weapon line
type WeaponProfile struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	Shots             string `json:"shots"`
	Strength          int32  `json:"strength"`
	ArmourPenetration int32  `json:"armour_penetration"`
	Damage            string `json:"damage"`
}

// WeaponSummary is the spread of a weapon's shots and damage
type WeaponSummary struct {
	MinShots       uint32  `json:"min_shots"`
	MaxShots       uint32  `json:"max_shots"`
	AverageShots   float64 `json:"average_shots"`
	MinDamage      uint32  `json:"min_damage"`
	MaxDamage      uint32  `json:"max_damage"`
	AverageDamage  float64 `json:"average_damage"`
	MaxTotalDamage uint64  `json:"max_total_damage"`
}

// ResolveWeaponRequest names an armoury weapon or carries a full profile
type ResolveWeaponRequest struct {
	EntityId   string         `json:"entity_id"`
	WeaponName string         `json:"weapon_name,omitempty"`
	Profile    *WeaponProfile `json:"profile,omitempty"`
}

// ResolveWeaponResponse is the outcome of firing a weapon once
type ResolveWeaponResponse struct {
	Weapon      string         `json:"weapon"`
	Profile     *WeaponProfile `json:"profile"`
	Summary     *WeaponSummary `json:"summary"`
	Shots       uint32         `json:"shots"`
	Damage      []uint32       `json:"damage"`
	TotalDamage uint64         `json:"total_damage"`
	Rolls       []*DiceRoll    `json:"rolls"`
	ExpiresAt   int64          `json:"expires_at"`
}

// GetRollSessionRequest identifies a session
type GetRollSessionRequest struct {
	EntityId string `json:"entity_id"`
	Context  string `json:"context"`
}

// GetRollSessionResponse lists a session's rolls
type GetRollSessionResponse struct {
	Rolls     []*DiceRoll `json:"rolls"`
	CreatedAt int64       `json:"created_at"`
	ExpiresAt int64       `json:"expires_at"`
}

// ClearRollSessionRequest identifies a session to remove
type ClearRollSessionRequest struct {
	EntityId string `json:"entity_id"`
	Context  string `json:"context"`
}

// ClearRollSessionResponse reports how many rolls were removed
type ClearRollSessionResponse struct {
	Message      string `json:"message"`
	RollsCleared int32  `json:"rolls_cleared"`
}
