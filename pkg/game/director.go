package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/cryptfall/pkg/components"
	"github.com/decker502/cryptfall/pkg/config"
	"github.com/decker502/cryptfall/pkg/ecs"
	"github.com/decker502/cryptfall/pkg/entities"
	"github.com/decker502/cryptfall/pkg/perks"
	"github.com/decker502/cryptfall/pkg/room"
	"github.com/decker502/cryptfall/pkg/systems"
	"github.com/decker502/cryptfall/pkg/utils"
	"github.com/google/uuid"
)

// RoomBannerDuration 进入新房间时提示文字的显示时长（秒）
const RoomBannerDuration = 2.0

var (
	// ErrNotPaused 当前不在天赋选择阶段
	ErrNotPaused = errors.New("game: not waiting for a perk selection")
	// ErrAlreadyStarted 游戏已经开始
	ErrAlreadyStarted = errors.New("game: already started")
)

// Director 一局游戏的编排者
//
// 持有实体世界、房间墙体、敌人列表和天赋池，
// 每帧由场景调用 Step 推进；暂停即调用方不再调用 Step
type Director struct {
	cfg   *config.GameConfig
	rng   systems.RandomSource
	runID uuid.UUID
	phase Phase

	entityManager *ecs.EntityManager
	clock         *systems.Clock

	animation *systems.AnimationSystem
	movement  *systems.MovementSystem
	combat    *systems.CombatSystem
	ai        *systems.EnemyAISystem
	control   *systems.PlayerControlSystem
	levels    *systems.LevelSystem
	flash     *systems.FlashEffectSystem
	lifetime  *systems.LifetimeSystem
	spawner   *systems.SpawnSystem

	catalog *perks.Catalog
	walls   []utils.AABB

	player           ecs.EntityID
	enemies          []ecs.EntityID
	enemiesRemaining int
	difficulty       int
	room             int

	pauseReason PauseReason
	hud         HUDSnapshot
}

// NewDirector 创建处于菜单状态的一局游戏
//
// 参数：
//   - cfg: 已校验的游戏数值配置
//   - rng: 刷怪、闪电与属性强化共用的随机源
func NewDirector(cfg *config.GameConfig, rng systems.RandomSource) (*Director, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	em := ecs.NewEntityManager()
	clock := systems.NewClock()
	animation := systems.NewAnimationSystem(em)
	movement := systems.NewMovementSystem(em, animation)
	combat := systems.NewCombatSystem(em, clock, animation, cfg.Flash.Duration)

	return &Director{
		cfg:           cfg,
		rng:           rng,
		runID:         uuid.New(),
		phase:         PhaseMenu,
		entityManager: em,
		clock:         clock,
		animation:     animation,
		movement:      movement,
		combat:        combat,
		ai:            systems.NewEnemyAISystem(em, movement, combat, animation),
		control:       systems.NewPlayerControlSystem(em, movement),
		levels:        systems.NewLevelSystem(em, cfg.Player.LevelUp),
		flash:         systems.NewFlashEffectSystem(em),
		lifetime:      systems.NewLifetimeSystem(em),
		spawner:       systems.NewSpawnSystem(em, cfg, clock, rng),
	}, nil
}

// Start 从菜单进入游戏：生成房间、玩家和第一波敌人
func (d *Director) Start() error {
	if d.phase != PhaseMenu {
		return fmt.Errorf("%w: phase is %s", ErrAlreadyStarted, d.phase)
	}

	d.walls = room.Generate(d.cfg.Room.Width, d.cfg.Room.Height, d.cfg.Room.TileSize)

	player, err := entities.NewPlayerEntity(d.entityManager, d.cfg, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	d.player = player
	d.catalog = perks.NewCatalog(d.cfg.Perks)

	d.difficulty = 1
	d.room = 1
	d.enemies = nil
	d.enemiesRemaining = d.cfg.Spawn.FirstWave
	d.spawner.StartWave(d.cfg.Spawn.FirstWave)

	d.phase = PhasePlaying
	d.refreshHUD()
	log.Printf("[Director] 游戏开始 (run %s): %d 面墙, 第一波 %d 个敌人", d.runID, len(d.walls), d.enemiesRemaining)
	return nil
}

// Step 推进一帧，只在 Playing 状态下生效
//
// 顺序：
//  0. 推进时钟；玩家死亡动画已结束则进入 GameOver
//  1. 按键控制玩家
//  2. 刷怪计时
//  3. 逐个敌人：玩家攻击 → 敌人 AI；死亡动画结束的敌人移出并计数
//  4. 玩家：天赋（存活时）→ 动画 → 升级检查
//  5. 闪烁与限时实体，清理待删除实体
//  6. 刷新 HUD
//  7. 升级优先进入天赋选择；否则房间清空时进入下一个房间并选择天赋
func (d *Director) Step(deltaTime float64, keys utils.KeyState) {
	if d.phase != PhasePlaying {
		return
	}

	d.clock.Advance(deltaTime)
	if d.playerRemoved() {
		d.phase = PhaseGameOver
		log.Printf("[Director] 游戏结束: 房间 %d, 分数 %d", d.room, d.hud.Score)
		return
	}

	d.control.Apply(d.player, keys, d.walls)

	if pos, ok := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.player); ok {
		spawned := d.spawner.Update(deltaTime, pos.Pos, d.difficulty)
		d.enemies = append(d.enemies, spawned...)
	}

	d.updateEnemies(deltaTime)
	d.updatePlayer(deltaTime)

	d.flash.Update(deltaTime)
	d.lifetime.Update(deltaTime)
	d.entityManager.RemoveMarkedEntities()

	d.refreshHUD()

	if pc, ok := ecs.GetComponent[*components.PlayerComponent](d.entityManager, d.player); ok && pc.LeveledUp {
		d.pause(PauseLevelUp)
		return
	}
	if d.enemiesRemaining <= 0 {
		d.nextRoom()
		d.pause(PauseRoomCleared)
	}
}

// playerRemoved 玩家实体是否已被释放
func (d *Director) playerRemoved() bool {
	if !d.entityManager.Exists(d.player) {
		return true
	}
	lifecycle, ok := ecs.GetComponent[*components.LifecycleComponent](d.entityManager, d.player)
	return ok && lifecycle.StopUpdate
}

func (d *Director) updateEnemies(deltaTime float64) {
	tracked := d.enemies[:0]
	for _, enemy := range d.enemies {
		d.combat.PlayerAttack(d.player, enemy)
		d.ai.Update(enemy, d.player, d.walls, deltaTime)

		lifecycle, ok := ecs.GetComponent[*components.LifecycleComponent](d.entityManager, enemy)
		if !ok || lifecycle.StopUpdate {
			d.entityManager.DestroyEntity(enemy)
			d.enemiesRemaining--
			continue
		}
		tracked = append(tracked, enemy)
	}
	d.enemies = tracked
}

func (d *Director) updatePlayer(deltaTime float64) {
	if d.combat.IsAlive(d.player) {
		d.catalog.Update(d.perkContext(deltaTime))
	}
	d.animation.Advance(d.player, deltaTime)
	d.levels.CheckLevelUp(d.player)
}

func (d *Director) perkContext(deltaTime float64) *perks.Context {
	return &perks.Context{
		EntityManager:       d.entityManager,
		Combat:              d.combat,
		Clock:               d.clock,
		Rand:                d.rng,
		Player:              d.player,
		Enemies:             d.enemies,
		DeltaTime:           deltaTime,
		EffectFrameInterval: d.cfg.Sprite.EffectFrameInterval,
	}
}

// nextRoom 进入下一个房间：难度与房间号加一，重新开始刷怪并奖励分数
func (d *Director) nextRoom() {
	d.difficulty++
	d.room++
	d.enemies = nil
	d.enemiesRemaining = d.cfg.Spawn.NextWave
	d.spawner.StartWave(d.cfg.Spawn.NextWave)

	if pc, ok := ecs.GetComponent[*components.PlayerComponent](d.entityManager, d.player); ok {
		pc.Score += d.cfg.Spawn.RoomClearBonus
	}
	entities.NewRoomBanner(d.entityManager, fmt.Sprintf("Room %d", d.room), RoomBannerDuration)

	d.refreshHUD()
	log.Printf("[Director] 房间清空，进入房间 %d (难度 %d)", d.room, d.difficulty)
}

func (d *Director) pause(reason PauseReason) {
	d.phase = PhasePaused
	d.pauseReason = reason
	log.Printf("[Director] 暂停等待天赋选择 (原因 %d)", reason)
}

// SelectPerk 选择第 index 张天赋卡片并恢复游戏
func (d *Director) SelectPerk(index int) error {
	if d.phase != PhasePaused {
		return fmt.Errorf("%w: phase is %s", ErrNotPaused, d.phase)
	}
	if _, err := d.catalog.Choose(index, d.perkContext(0)); err != nil {
		return err
	}

	if pc, ok := ecs.GetComponent[*components.PlayerComponent](d.entityManager, d.player); ok {
		pc.LeveledUp = false
	}
	d.phase = PhasePlaying
	d.pauseReason = PauseNone
	d.refreshHUD()
	return nil
}

// PerkOffer 当前可选的天赋卡片，不在暂停状态时返回 nil
func (d *Director) PerkOffer() []perks.Card {
	if d.phase != PhasePaused {
		return nil
	}
	return d.catalog.Offer()
}

func (d *Director) refreshHUD() {
	hud := HUDSnapshot{
		RunID:            d.runID,
		Room:             d.room,
		Difficulty:       d.difficulty,
		EnemiesRemaining: d.enemiesRemaining,
	}
	if pc, ok := ecs.GetComponent[*components.PlayerComponent](d.entityManager, d.player); ok {
		hud.Score = pc.Score
		hud.Level = pc.Level
		hud.Exp = pc.Exp
		hud.ExpRequired = pc.ExpRequired
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](d.entityManager, d.player); ok {
		hud.Health = health.Health
	}
	d.hud = hud
}

// Snapshot 最近一次刷新的 HUD 数据
func (d *Director) Snapshot() HUDSnapshot { return d.hud }

// Phase 当前流程状态
func (d *Director) Phase() Phase { return d.phase }

// PauseReason 当前暂停原因
func (d *Director) PauseReason() PauseReason { return d.pauseReason }

// RunID 本局的唯一标识
func (d *Director) RunID() string { return d.runID.String() }

// EntityManager 返回实体世界（渲染用）
func (d *Director) EntityManager() *ecs.EntityManager { return d.entityManager }

// Walls 当前房间的墙体
func (d *Director) Walls() []utils.AABB { return d.walls }

// Player 玩家实体
func (d *Director) Player() ecs.EntityID { return d.player }

// Enemies 当前跟踪的敌人
func (d *Director) Enemies() []ecs.EntityID { return d.enemies }

// Clock 模拟时钟
func (d *Director) Clock() *systems.Clock { return d.clock }
