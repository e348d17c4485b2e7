package persist

import (
	"context"
	"errors"

	"github.com/aligo/server/internal/command"
	"github.com/jackc/pgx/v5"
)

type HorseRepo struct {
	db *DB
}

func NewHorseRepo(db *DB) *HorseRepo {
	return &HorseRepo{db: db}
}

const horseColumns = `uid, tid, name,
	skin_id, mane_id, tail_id, face_id,
	scale, leg_length, leg_volume, body_length, body_volume,
	agility, control, speed, strength, spirit,
	rating, class, class_progress, grade, growth_points,
	stamina, attractiveness, hunger,
	vals0_val0, vals0_val1, vals0_val2, vals0_val3, vals0_val4,
	vals0_val5, vals0_val6, vals0_val7, vals0_val8, vals0_val9, vals0_val10,
	vals1_val0, vals1_val1, date_of_birth, vals1_val3, vals1_val4,
	class_progression, vals1_val5,
	potential_level, has_potential, potential_value, vals1_val9,
	luck, has_luck, vals1_val12, fatigue, vals1_val14, emblem,
	spur_magic_count, jump_count, sliding_time, gliding_distance,
	val16, val17`

func scanHorse(rows pgx.Rows) (command.Horse, error) {
	var h command.Horse
	err := rows.Scan(
		&h.UID, &h.TID, &h.Name,
		&h.Parts.SkinID, &h.Parts.ManeID, &h.Parts.TailID, &h.Parts.FaceID,
		&h.Appearance.Scale, &h.Appearance.LegLength, &h.Appearance.LegVolume,
		&h.Appearance.BodyLength, &h.Appearance.BodyVolume,
		&h.Stats.Agility, &h.Stats.Control, &h.Stats.Speed, &h.Stats.Strength, &h.Stats.Spirit,
		&h.Rating, &h.Class, &h.ClassProgress, &h.Grade, &h.GrowthPoints,
		&h.Vals0.Stamina, &h.Vals0.Attractiveness, &h.Vals0.Hunger,
		&h.Vals0.Val0, &h.Vals0.Val1, &h.Vals0.Val2, &h.Vals0.Val3, &h.Vals0.Val4,
		&h.Vals0.Val5, &h.Vals0.Val6, &h.Vals0.Val7, &h.Vals0.Val8, &h.Vals0.Val9, &h.Vals0.Val10,
		&h.Vals1.Val0, &h.Vals1.Val1, &h.Vals1.DateOfBirth, &h.Vals1.Val3, &h.Vals1.Val4,
		&h.Vals1.ClassProgression, &h.Vals1.Val5,
		&h.Vals1.PotentialLevel, &h.Vals1.HasPotential, &h.Vals1.PotentialValue, &h.Vals1.Val9,
		&h.Vals1.Luck, &h.Vals1.HasLuck, &h.Vals1.Val12, &h.Vals1.Fatigue, &h.Vals1.Val14, &h.Vals1.Emblem,
		&h.Mastery.SpurMagicCount, &h.Mastery.JumpCount, &h.Mastery.SlidingTime, &h.Mastery.GlidingDistance,
		&h.Val16, &h.Val17,
	)
	return h, err
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func queryHorses(ctx context.Context, q querier, sql string, args ...any) ([]command.Horse, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var horses []command.Horse
	for rows.Next() {
		h, err := scanHorse(rows)
		if err != nil {
			return nil, err
		}
		horses = append(horses, h)
	}
	return horses, rows.Err()
}

func (r *HorseRepo) LoadByCharacter(ctx context.Context, characterID uint32) ([]command.Horse, error) {
	return queryHorses(ctx, r.db.Pool,
		`SELECT `+horseColumns+` FROM horses WHERE character_id = $1 ORDER BY uid`,
		int64(characterID),
	)
}

func (r *HorseRepo) LoadByUID(ctx context.Context, uid uint32) (*command.Horse, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+horseColumns+` FROM horses WHERE uid = $1`, int64(uid),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	h, err := scanHorse(rows)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Insert stores a new horse for the character and fills in the
// generated uid.
func (r *HorseRepo) Insert(ctx context.Context, characterID uint32, h *command.Horse) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO horses (
			character_id, tid, name,
			skin_id, mane_id, tail_id, face_id,
			scale, leg_length, leg_volume, body_length, body_volume,
			agility, control, speed, strength, spirit,
			rating, class, class_progress, grade, growth_points,
			stamina, attractiveness, hunger,
			vals0_val0, vals0_val1, vals0_val2, vals0_val3, vals0_val4,
			vals0_val5, vals0_val6, vals0_val7, vals0_val8, vals0_val9, vals0_val10,
			vals1_val0, vals1_val1, date_of_birth, vals1_val3, vals1_val4,
			class_progression, vals1_val5,
			potential_level, has_potential, potential_value, vals1_val9,
			luck, has_luck, vals1_val12, fatigue, vals1_val14, emblem,
			spur_magic_count, jump_count, sliding_time, gliding_distance,
			val16, val17
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24, $25,
			$26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36,
			$37, $38, $39, $40, $41,
			$42, $43,
			$44, $45, $46, $47,
			$48, $49, $50, $51, $52, $53,
			$54, $55, $56, $57,
			$58, $59
		) RETURNING uid`,
		int64(characterID), int64(h.TID), h.Name,
		int16(h.Parts.SkinID), int16(h.Parts.ManeID), int16(h.Parts.TailID), int16(h.Parts.FaceID),
		int16(h.Appearance.Scale), int16(h.Appearance.LegLength), int16(h.Appearance.LegVolume),
		int16(h.Appearance.BodyLength), int16(h.Appearance.BodyVolume),
		int64(h.Stats.Agility), int64(h.Stats.Control), int64(h.Stats.Speed),
		int64(h.Stats.Strength), int64(h.Stats.Spirit),
		int64(h.Rating), int16(h.Class), int16(h.ClassProgress), int16(h.Grade), int32(h.GrowthPoints),
		int32(h.Vals0.Stamina), int32(h.Vals0.Attractiveness), int32(h.Vals0.Hunger),
		int32(h.Vals0.Val0), int32(h.Vals0.Val1), int32(h.Vals0.Val2), int32(h.Vals0.Val3), int32(h.Vals0.Val4),
		int32(h.Vals0.Val5), int32(h.Vals0.Val6), int32(h.Vals0.Val7), int32(h.Vals0.Val8),
		int32(h.Vals0.Val9), int32(h.Vals0.Val10),
		int16(h.Vals1.Val0), int64(h.Vals1.Val1), int64(h.Vals1.DateOfBirth),
		int16(h.Vals1.Val3), int16(h.Vals1.Val4),
		int64(h.Vals1.ClassProgression), int64(h.Vals1.Val5),
		int16(h.Vals1.PotentialLevel), int16(h.Vals1.HasPotential),
		int16(h.Vals1.PotentialValue), int16(h.Vals1.Val9),
		int16(h.Vals1.Luck), int16(h.Vals1.HasLuck), int16(h.Vals1.Val12),
		int32(h.Vals1.Fatigue), int32(h.Vals1.Val14), int32(h.Vals1.Emblem),
		int64(h.Mastery.SpurMagicCount), int64(h.Mastery.JumpCount),
		int64(h.Mastery.SlidingTime), int64(h.Mastery.GlidingDistance),
		int64(h.Val16), int64(h.Val17),
	).Scan(&h.UID)
}

func (r *HorseRepo) UpdateName(ctx context.Context, uid uint32, name string) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE horses SET name = $2 WHERE uid = $1`,
		int64(uid), name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return errors.New("horse not found")
	}
	return nil
}
