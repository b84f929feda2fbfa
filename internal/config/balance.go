package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds every gameplay tunable. Times are in milliseconds, distances
// in grid cells and speeds in cells per second.
type Balance struct {
	StartGold       int     `yaml:"start_gold"`
	MaxEnemies      int     `yaml:"max_enemies"`
	FinalWave       int     `yaml:"final_wave"`
	BossWaveEvery   int     `yaml:"boss_wave_every"`
	PrepareTimeMs   float64 `yaml:"prepare_time_ms"`
	RestTimeMs      float64 `yaml:"rest_time_ms"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	SpawnQuota      int     `yaml:"spawn_quota"`

	Enemy   EnemyBalance   `yaml:"enemy"`
	Boss    BossBalance    `yaml:"boss"`
	Combat  CombatBalance  `yaml:"combat"`
	Economy EconomyBalance `yaml:"economy"`
	Rewards RewardBalance  `yaml:"rewards"`
	Frame   FrameBalance   `yaml:"frame"`
}

type EnemyBalance struct {
	BaseHP            float64            `yaml:"base_hp"`
	HPGrowth          float64            `yaml:"hp_growth"`
	BaseSpeed         float64            `yaml:"base_speed"`
	RampStartWave     int                `yaml:"ramp_start_wave"`
	RampPerWave       float64            `yaml:"ramp_per_wave"`
	LateRampStartWave int                `yaml:"late_ramp_start_wave"`
	LateRampPerWave   float64            `yaml:"late_ramp_per_wave"`
	SpawnJitter       float64            `yaml:"spawn_jitter"`
	TypeHP            map[string]float64 `yaml:"type_hp"`
	TypeSpeed         map[string]float64 `yaml:"type_speed"`
}

type BossBalance struct {
	HPMultiplier          float64 `yaml:"hp_multiplier"`
	SpeedFactor           float64 `yaml:"speed_factor"`
	DashIntervalMs        float64 `yaml:"dash_interval_ms"`
	DashWaypoints         int     `yaml:"dash_waypoints"`
	ShieldIntervalMs      float64 `yaml:"shield_interval_ms"`
	ShieldDurationMs      float64 `yaml:"shield_duration_ms"`
	ShieldReduction       float64 `yaml:"shield_reduction"`
	TypeShiftIntervalMs   float64 `yaml:"type_shift_interval_ms"`
	EnrageSpeedPerSecond  float64 `yaml:"enrage_speed_per_second"`
	EnrageThreshold       float64 `yaml:"enrage_threshold"`
	EnrageMultiplier      float64 `yaml:"enrage_multiplier"`
	PhaseTwoThreshold     float64 `yaml:"phase_two_threshold"`
	PhaseThreeThreshold   float64 `yaml:"phase_three_threshold"`
	PhaseTwoSpeedFactor   float64 `yaml:"phase_two_speed_factor"`
	PhaseThreeSpeedFactor float64 `yaml:"phase_three_speed_factor"`
}

type CombatBalance struct {
	UnitMinSeparation float64 `yaml:"unit_min_separation"`
	DeflectForward    float64 `yaml:"deflect_forward"`
	DeflectSide       float64 `yaml:"deflect_side"`
	SingleHitDelayMs  int64   `yaml:"single_hit_delay_ms"`
	AreaHitDelayMs    int64   `yaml:"area_hit_delay_ms"`
	CritMultiplier    float64 `yaml:"crit_multiplier"`
}

type EconomyBalance struct {
	SummonCost       int     `yaml:"summon_cost"`
	GambleCost       int     `yaml:"gamble_cost"`
	SpellDrawCost    int     `yaml:"spell_draw_cost"`
	UpgradeBaseCost  int     `yaml:"upgrade_base_cost"`
	MergeSuccessRate float64 `yaml:"merge_success_rate"`
	MergeFailRate    float64 `yaml:"merge_fail_rate"`
}

type RewardBalance struct {
	EnemyKillGold     int     `yaml:"enemy_kill_gold"`
	BossKillGold      int     `yaml:"boss_kill_gold"`
	WaveClearGold     int     `yaml:"wave_clear_gold"`
	EnemyKillScore    int     `yaml:"enemy_kill_score"`
	BossKillScore     int     `yaml:"boss_kill_score"`
	GoldBonusPerLevel float64 `yaml:"gold_bonus_per_level"`
}

// FrameBalance bounds the elapsed time handed to a single tick.
type FrameBalance struct {
	MaxElapsedMs float64 `yaml:"max_elapsed_ms"`
	MinElapsedMs float64 `yaml:"min_elapsed_ms"`
}

func DefaultBalance() *Balance {
	return &Balance{
		StartGold:       300,
		MaxEnemies:      100,
		FinalWave:       50,
		BossWaveEvery:   10,
		PrepareTimeMs:   5000,
		RestTimeMs:      20000,
		SpawnIntervalMs: 500,
		SpawnQuota:      140,
		Enemy: EnemyBalance{
			BaseHP:            70,
			HPGrowth:          1.15,
			BaseSpeed:         1.6,
			RampStartWave:     20,
			RampPerWave:       0.02,
			LateRampStartWave: 35,
			LateRampPerWave:   0.03,
			SpawnJitter:       0.3,
			TypeHP:            map[string]float64{"A": 1.0, "B": 1.3, "C": 0.8, "D": 1.1},
			TypeSpeed:         map[string]float64{"A": 1.0, "B": 0.8, "C": 1.3, "D": 1.0},
		},
		Boss: BossBalance{
			HPMultiplier:          100,
			SpeedFactor:           0.35,
			DashIntervalMs:        10000,
			DashWaypoints:         5,
			ShieldIntervalMs:      15000,
			ShieldDurationMs:      5000,
			ShieldReduction:       0.5,
			TypeShiftIntervalMs:   20000,
			EnrageSpeedPerSecond:  0.02,
			EnrageThreshold:       0.5,
			EnrageMultiplier:      1.5,
			PhaseTwoThreshold:     0.66,
			PhaseThreeThreshold:   0.33,
			PhaseTwoSpeedFactor:   0.7,
			PhaseThreeSpeedFactor: 1.5,
		},
		Combat: CombatBalance{
			UnitMinSeparation: 0.3,
			DeflectForward:    0.3,
			DeflectSide:       0.7,
			SingleHitDelayMs:  120,
			AreaHitDelayMs:    350,
			CritMultiplier:    2.5,
		},
		Economy: EconomyBalance{
			SummonCost:       100,
			GambleCost:       100,
			SpellDrawCost:    500,
			UpgradeBaseCost:  50,
			MergeSuccessRate: 0.16,
			MergeFailRate:    0.35,
		},
		Rewards: RewardBalance{
			EnemyKillGold:     1,
			BossKillGold:      50,
			WaveClearGold:     50,
			EnemyKillScore:    10,
			BossKillScore:     100,
			GoldBonusPerLevel: 0.1,
		},
		Frame: FrameBalance{
			MaxElapsedMs: 200,
			MinElapsedMs: 16,
		},
	}
}

// LoadBalance reads a YAML file on top of DefaultBalance. Keys missing from
// the file keep their default values.
func LoadBalance(path string) (*Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate rejects values the simulation cannot run with.
func (b *Balance) Validate() error {
	switch {
	case b.MaxEnemies <= 0:
		return fmt.Errorf("max_enemies must be positive, got %d", b.MaxEnemies)
	case b.FinalWave <= 0:
		return fmt.Errorf("final_wave must be positive, got %d", b.FinalWave)
	case b.BossWaveEvery <= 0:
		return fmt.Errorf("boss_wave_every must be positive, got %d", b.BossWaveEvery)
	case b.SpawnIntervalMs <= 0:
		return fmt.Errorf("spawn_interval_ms must be positive, got %v", b.SpawnIntervalMs)
	case b.Economy.MergeSuccessRate+b.Economy.MergeFailRate > 1:
		return fmt.Errorf("merge success and fail rates exceed 1")
	case b.Frame.MinElapsedMs > b.Frame.MaxElapsedMs:
		return fmt.Errorf("frame min_elapsed_ms exceeds max_elapsed_ms")
	}
	return nil
}

// IsBossWave reports whether wave spawns a boss on entry.
func (b *Balance) IsBossWave(wave int) bool {
	return wave > 0 && wave%b.BossWaveEvery == 0
}
