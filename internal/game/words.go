package game

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/prysms/draw-backend/internal"
)

// Static tiered word pools. One candidate per tier is offered to the
// drawer each round.
var (
	easyWords = []string{
		"casa", "gato", "sol", "bola", "árvore", "peixe", "carro", "flor", "livro", "mesa",
		"cadeira", "porta", "janela", "telefone", "computador", "banana", "maçã", "cachorro",
	}
	mediumWords = []string{
		"guitarra", "elefante", "montanha", "oceano", "foguete", "helicóptero", "dinossauro",
		"castelo", "astronauta", "cachoeira", "vulcão", "pirâmide", "unicórnio", "dragão",
	}
	hardWords = []string{
		"democracia", "fotossíntese", "gravitação", "metamorfose", "paleontologia",
		"criptografia", "sustentabilidade", "nanotecnologia", "biodiversidade",
	}
)

// GenerateWordOptions picks one random word per tier, easy first. The
// ids are opaque and only ever valid for the selecting phase that
// produced them.
func GenerateWordOptions() []internal.WordOption {
	return []internal.WordOption{
		{ID: uuid.NewString(), Word: easyWords[rand.Intn(len(easyWords))], Tier: internal.TierEasy},
		{ID: uuid.NewString(), Word: mediumWords[rand.Intn(len(mediumWords))], Tier: internal.TierMedium},
		{ID: uuid.NewString(), Word: hardWords[rand.Intn(len(hardWords))], Tier: internal.TierHard},
	}
}
