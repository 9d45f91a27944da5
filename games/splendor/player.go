package splendor

import (
	"github.com/andyzhou/gamehost/define"
)

/*
 * player state.
 * points always equal owned card points plus noble points,
 * AddCard and AddNoble are the only mutators.
 */

//face info
type Player struct {
	id       uint32
	owned    []Development
	reserved []Development
	tokens   ResourceMap
	nobles   []Noble
	points   int32
}

//construct
func NewPlayer(id uint32) *Player {
	return &Player{id: id}
}

func (f *Player) Id() uint32 {
	return f.id
}

func (f *Player) Points() int32 {
	return f.points
}

func (f *Player) Tokens() ResourceMap {
	return f.tokens
}

func (f *Player) Owned() []Development {
	return append([]Development(nil), f.owned...)
}

func (f *Player) Reserved() []Development {
	return append([]Development(nil), f.reserved...)
}

func (f *Player) Nobles() []Noble {
	return append([]Noble(nil), f.nobles...)
}

//Production counts owned cards per colour
func (f *Player) Production() ResourceMap {
	var m ResourceMap
	for _, card := range f.owned {
		m.PutOne(card.Color)
	}
	return m
}

func (f *Player) AddCard(card Development) {
	f.owned = append(f.owned, card)
	f.points += card.Points
}

func (f *Player) AddNoble(noble Noble) {
	f.nobles = append(f.nobles, noble)
	f.points += noble.Points
}

func (f *Player) Reserve(card Development) {
	f.reserved = append(f.reserved, card)
}

func (f *Player) TakeOne(t ResourceType) {
	f.tokens.PutOne(t)
}

//Spend removes a price from the tokens, fails without change on shortfall
func (f *Player) Spend(price ResourceMap) error {
	return f.tokens.Sub(price)
}

func (f *Player) peekReserved(index int) (Development, error) {
	if index < 0 || index >= len(f.reserved) {
		return Development{}, define.IllegalOperation("reserved index %d out of range [0,%d)", index, len(f.reserved))
	}
	return f.reserved[index], nil
}

func (f *Player) removeReserved(index int) Development {
	card := f.reserved[index]
	f.reserved = append(f.reserved[:index], f.reserved[index+1:]...)
	return card
}

func (f *Player) view() *PlayerView {
	return &PlayerView{
		UserId:      f.id,
		Development: f.Production(),
		Resource:    f.tokens,
		Nobles:      f.Nobles(),
		ReservedNum: int32(len(f.reserved)),
		Points:      f.points,
	}
}
