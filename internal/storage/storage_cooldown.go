package storage

import (
	"fmt"
	"log"
	"time"
)

// SetGuessCooldown records when a user may start the next guessing round.
func (s *Storage) SetGuessCooldown(guildID string, userID string, until time.Time) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	if record.GuessCooldowns == nil {
		record.GuessCooldowns = make(map[string]time.Time)
	}

	record.GuessCooldowns[userID] = until
	s.ds.Add(guildID, record)
	return nil
}

func (s *Storage) GetGuessCooldown(guildID string, userID string) (time.Time, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return time.Time{}, err
	}

	if record.GuessCooldowns == nil {
		return time.Time{}, fmt.Errorf("no cooldown found")
	}

	cooldown, exists := record.GuessCooldowns[userID]
	if !exists {
		return time.Time{}, fmt.Errorf("no cooldown for user %s", userID)
	}

	return cooldown, nil
}

func (s *Storage) ClearGuessCooldown(guildID string, userID string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	if record.GuessCooldowns != nil {
		delete(record.GuessCooldowns, userID)
		s.ds.Add(guildID, record)
	}

	return nil
}

// ClearExpiredGuessCooldowns drops cooldown entries that already elapsed.
func (s *Storage) ClearExpiredGuessCooldowns() error {
	now := time.Now()

	for _, guildID := range s.ds.Keys() {
		record, err := s.getOrCreateGuildRecord(guildID)
		if err != nil {
			return fmt.Errorf("error fetching record for guild %s: %w", guildID, err)
		}

		if record.GuessCooldowns == nil {
			continue
		}

		changed := false
		for userID, cooldown := range record.GuessCooldowns {
			if cooldown.Before(now) {
				delete(record.GuessCooldowns, userID)
				changed = true
				log.Println("[INFO] Expired guess cooldown for user", userID, "in guild", guildID)
			}
		}

		if changed {
			s.ds.Add(guildID, record)
		}
	}

	return nil
}
