package domain

import "github.com/SscSPs/gcash_pos_backend/internal/apperrors"

type feeTier struct {
	upTo Cents
	fee  Cents
}

// gcashFeeTiers is the agent fee table. Upper bounds are inclusive; anything
// above the last bound pays the last fee.
var gcashFeeTiers = []feeTier{
	{Pesos(250), Pesos(5)},
	{Pesos(500), Pesos(10)},
	{Pesos(1000), Pesos(20)},
	{Pesos(1500), Pesos(30)},
	{Pesos(2000), Pesos(40)},
	{Pesos(2500), Pesos(50)},
	{Pesos(3000), Pesos(60)},
	{Pesos(3500), Pesos(70)},
	{Pesos(4000), Pesos(80)},
	{Pesos(4500), Pesos(90)},
	{Pesos(5000), Pesos(100)},
	{Pesos(5500), Pesos(110)},
	{Pesos(6000), Pesos(120)},
	{Pesos(6500), Pesos(130)},
	{Pesos(7000), Pesos(140)},
	{Pesos(7500), Pesos(150)},
	{Pesos(8000), Pesos(160)},
	{Pesos(8500), Pesos(170)},
	{Pesos(9000), Pesos(180)},
	{Pesos(9500), Pesos(190)},
	{Pesos(10000), Pesos(200)},
	{Pesos(11000), Pesos(220)},
}

// GCashFee returns the agent fee for a cash-in or cash-out of amount.
func GCashFee(amount Cents) (Cents, error) {
	if amount <= 0 {
		return 0, &apperrors.InvalidAmountError{Field: "amount", Amount: amount.Decimal()}
	}
	for _, t := range gcashFeeTiers {
		if amount <= t.upTo {
			return t.fee, nil
		}
	}
	return gcashFeeTiers[len(gcashFeeTiers)-1].fee, nil
}
