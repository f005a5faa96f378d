package scenes

import (
	"log"

	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/entities"
	"github.com/decker502/memorymatch/pkg/round"
)

// round.Host 实现

func (s *GameScene) NewCard(value config.CardValue) round.Card {
	card := entities.NewCardEntity(s.entityManager, value)
	s.cards[card.ID()] = card
	return card
}

func (s *GameScene) DestroyCard(card round.Card) {
	ce, ok := card.(*entities.CardEntity)
	if !ok {
		log.Printf("[GameScene] Warning: DestroyCard with foreign card %T", card)
		return
	}
	delete(s.cards, ce.ID())
	ce.Destroy()
}

func (s *GameScene) Play(cue round.Cue) {
	s.player.Play(cue)
}

func (s *GameScene) SetText(field round.TextField, value string) {
	if id, ok := s.hudEntities[field]; ok {
		setText(s.entityManager, id, value)
	}
}

func (s *GameScene) ScreenSize() (float64, float64) {
	return config.GameWindowWidth, config.GameWindowHeight
}
