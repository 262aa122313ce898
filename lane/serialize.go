package lane

// Flat field-map serialization for transport across a process boundary.
// Tagged variants travel as their string labels; unknown or malformed
// fields fall back to the baseline state rather than failing.

func parsePosition(label string) (Position, bool) {
	for p, l := range positionLabels {
		if l == label {
			return p, true
		}
	}
	return Middle, false
}

func parseWavePosition(label string) (WavePosition, bool) {
	for w, l := range waveLabels {
		if l == label {
			return w, true
		}
	}
	return WaveMiddle, false
}

func parseJunglerLocation(label string) (JunglerLocation, bool) {
	for j, l := range junglerLabels {
		if l == label {
			return j, true
		}
	}
	return JunglerUnknown, false
}

// ToFields flattens the state into named fields. The mirror of FromFields.
func (s LaneState) ToFields() map[string]any {
	return map[string]any{
		"my_champion_id":     s.ChampionID,
		"my_hp":              s.HP,
		"my_hp_max":          s.HPMax,
		"my_mana":            s.Mana,
		"my_mana_max":        s.ManaMax,
		"my_level":           s.Level,
		"my_xp_to_next":      s.XPToNext,
		"my_q_cd":            s.QCD,
		"my_w_cd":            s.WCD,
		"my_e_cd":            s.ECD,
		"my_r_cd":            s.RCD,
		"my_flash_cd":        s.FlashCD,
		"my_summ2_type":      s.Summoner2,
		"my_summ2_cd":        s.Summoner2CD,
		"my_position":        s.Position.String(),
		"my_gold":            s.Gold,
		"my_items":           append([]string(nil), s.Items...),
		"my_combat_power":    s.CombatPower,
		"enemy_champion_id":  s.EnemyChampionID,
		"enemy_hp":           s.EnemyHP,
		"enemy_hp_max":       s.EnemyHPMax,
		"enemy_mana_est":     s.EnemyManaEst,
		"enemy_level":        s.EnemyLevel,
		"enemy_q_cd_est":     s.EnemyQCDEst,
		"enemy_w_cd_est":     s.EnemyWCDEst,
		"enemy_e_cd_est":     s.EnemyECDEst,
		"enemy_r_cd_est":     s.EnemyRCDEst,
		"enemy_flash_cd_est": s.EnemyFlashCDEst,
		"enemy_position":     s.EnemyPosition.String(),
		"enemy_combat_power": s.EnemyCombatPower,
		"my_minions":         s.MyMinions,
		"enemy_minions":      s.EnemyMinions,
		"wave_position":      s.Wave.String(),
		"is_cannon_wave":     s.CannonWave,
		"enemy_jg_last_seen": s.JunglerLastSeen,
		"enemy_jg_location":  s.JunglerLocation.String(),
		"dragon_timer":       s.DragonTimer,
		"herald_timer":       s.HeraldTimer,
		"my_tower_hp":        s.MyTowerHP,
		"enemy_tower_hp":     s.EnemyTowerHP,
		"game_time":          s.GameTime,
		"phase":              s.Phase.String(),
	}
}

// FromFields builds a state from a flat field map. Every field is optional:
// missing, malformed or unrecognized values keep the baseline default.
func FromFields(fields map[string]any) LaneState {
	s := NewLaneState()

	str := func(key string, dst *string) {
		if v, ok := fields[key].(string); ok {
			*dst = v
		}
	}
	num := func(key string, dst *float64) {
		switch v := fields[key].(type) {
		case float64:
			*dst = v
		case int:
			*dst = float64(v)
		}
	}
	count := func(key string, dst *int) {
		switch v := fields[key].(type) {
		case float64:
			*dst = int(v)
		case int:
			*dst = v
		}
	}

	str("my_champion_id", &s.ChampionID)
	num("my_hp", &s.HP)
	num("my_hp_max", &s.HPMax)
	num("my_mana", &s.Mana)
	num("my_mana_max", &s.ManaMax)
	count("my_level", &s.Level)
	num("my_xp_to_next", &s.XPToNext)
	num("my_q_cd", &s.QCD)
	num("my_w_cd", &s.WCD)
	num("my_e_cd", &s.ECD)
	num("my_r_cd", &s.RCD)
	num("my_flash_cd", &s.FlashCD)
	str("my_summ2_type", &s.Summoner2)
	num("my_summ2_cd", &s.Summoner2CD)
	num("my_gold", &s.Gold)
	num("my_combat_power", &s.CombatPower)
	str("enemy_champion_id", &s.EnemyChampionID)
	num("enemy_hp", &s.EnemyHP)
	num("enemy_hp_max", &s.EnemyHPMax)
	num("enemy_mana_est", &s.EnemyManaEst)
	count("enemy_level", &s.EnemyLevel)
	num("enemy_q_cd_est", &s.EnemyQCDEst)
	num("enemy_w_cd_est", &s.EnemyWCDEst)
	num("enemy_e_cd_est", &s.EnemyECDEst)
	num("enemy_r_cd_est", &s.EnemyRCDEst)
	num("enemy_flash_cd_est", &s.EnemyFlashCDEst)
	num("enemy_combat_power", &s.EnemyCombatPower)
	count("my_minions", &s.MyMinions)
	count("enemy_minions", &s.EnemyMinions)
	num("enemy_jg_last_seen", &s.JunglerLastSeen)
	num("dragon_timer", &s.DragonTimer)
	num("herald_timer", &s.HeraldTimer)
	num("my_tower_hp", &s.MyTowerHP)
	num("enemy_tower_hp", &s.EnemyTowerHP)
	num("game_time", &s.GameTime)

	if v, ok := fields["is_cannon_wave"].(bool); ok {
		s.CannonWave = v
	}

	if label, ok := fields["my_position"].(string); ok {
		if p, ok := parsePosition(label); ok {
			s.Position = p
		}
	}
	if label, ok := fields["enemy_position"].(string); ok {
		if p, ok := parsePosition(label); ok {
			s.EnemyPosition = p
		}
	}
	if label, ok := fields["wave_position"].(string); ok {
		if w, ok := parseWavePosition(label); ok {
			s.Wave = w
		}
	}
	if label, ok := fields["enemy_jg_location"].(string); ok {
		if j, ok := parseJunglerLocation(label); ok {
			s.JunglerLocation = j
		}
	}
	if label, ok := fields["phase"].(string); ok {
		for p, l := range phaseLabels {
			if l == label {
				s.Phase = p
			}
		}
	}

	switch items := fields["my_items"].(type) {
	case []string:
		s.Items = append([]string(nil), items...)
	case []any:
		for _, item := range items {
			if name, ok := item.(string); ok {
				s.Items = append(s.Items, name)
			}
		}
	}

	return s
}
