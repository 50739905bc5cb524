package machine

import (
	"github.com/bgallie/enigma/alphabet"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlockSymbols is the capacity of a SymbolBlock.
const BlockSymbols = 256

// SymbolBlock is the data passed through a Session.  A block with a
// non-positive Length shuts the session down.
type SymbolBlock struct {
	Length  int
	Symbols [BlockSymbols]int
	Err     error
}

// Session runs a Machine in its own goroutine, fed through the Left channel
// and answering on the Right channel.  The Session owns the Machine for its
// lifetime, so blocks are enciphered strictly in the order they are sent.
type Session struct {
	id      uuid.UUID
	machine *Machine
	left    chan SymbolBlock
	right   chan SymbolBlock
	count   int64
	logger  zerolog.Logger
}

// NewSession starts a session around m.  m must not be used by anything
// else until the session has been shut down.
func NewSession(m *Machine) *Session {
	s := &Session{
		id:      uuid.New(),
		machine: m,
		left:    make(chan SymbolBlock),
		right:   make(chan SymbolBlock),
	}
	s.logger = log.With().Str("session_id", s.id.String()).Logger()
	go s.run()
	return s
}

func (s *Session) run() {
	s.logger.Debug().
		Str("positions", alphabet.Denormalize(s.machine.Positions())).
		Msg("session started")
	for {
		blk := <-s.left
		if blk.Length <= 0 {
			s.logger.Debug().
				Int64("symbols", s.count).
				Str("positions", alphabet.Denormalize(s.machine.Positions())).
				Msg("session closed")
			s.right <- blk
			break
		}

		if blk.Length > BlockSymbols {
			blk.Length = BlockSymbols
		}
		out, err := s.machine.Encrypt(blk.Symbols[:blk.Length])
		if err != nil {
			s.logger.Error().Err(err).Msg("block rejected")
			blk.Err = err
		} else {
			copy(blk.Symbols[:], out)
			s.count += int64(blk.Length)
		}
		s.right <- blk
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Left() chan<- SymbolBlock {
	return s.left
}

func (s *Session) Right() <-chan SymbolBlock {
	return s.right
}

// Close shuts the session down and waits for it to finish.
func (s *Session) Close() {
	s.left <- SymbolBlock{}
	<-s.right
}
