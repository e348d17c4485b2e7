package persist

import (
	"context"
	"errors"

	"github.com/aligo/server/internal/command"
	"github.com/aligo/server/internal/entity"
	"github.com/jackc/pgx/v5"
)

type CharacterRepo struct {
	db *DB
}

func NewCharacterRepo(db *DB) *CharacterRepo {
	return &CharacterRepo{db: db}
}

const characterColumns = `character_id, member_no, nickname, mount_uid,
	char_id, mouth_serial_id, face_serial_id, parts_val0,
	appearance_val0, head_size, height, thigh_volume, leg_volume, appearance_val1,
	create_character_unk0`

func scanCharacter(row pgx.Row) (*entity.Character, error) {
	c := &entity.Character{}
	err := row.Scan(
		&c.ID, &c.MemberNo, &c.Nickname, &c.MountUID,
		&c.Shape.Parts.CharID, &c.Shape.Parts.MouthSerialID, &c.Shape.Parts.FaceSerialID, &c.Shape.Parts.Val0,
		&c.Shape.Appearance.Val0, &c.Shape.Appearance.HeadSize, &c.Shape.Appearance.Height,
		&c.Shape.Appearance.ThighVolume, &c.Shape.Appearance.LegVolume, &c.Shape.Appearance.Val1,
		&c.CreateUnk0,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// LoadByMemberNo fetches the account's character. Returns (nil, nil)
// when the account has not created one yet.
func (r *CharacterRepo) LoadByMemberNo(ctx context.Context, memberNo uint32) (*entity.Character, error) {
	return scanCharacter(r.db.Pool.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE member_no = $1`,
		int64(memberNo),
	))
}

func (r *CharacterRepo) LoadByID(ctx context.Context, characterID uint32) (*entity.Character, error) {
	return scanCharacter(r.db.Pool.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE character_id = $1`,
		int64(characterID),
	))
}

// Insert stores a new character and fills in the generated id.
func (r *CharacterRepo) Insert(ctx context.Context, c *entity.Character) error {
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO characters (
			member_no, nickname, mount_uid,
			char_id, mouth_serial_id, face_serial_id, parts_val0,
			appearance_val0, head_size, height, thigh_volume, leg_volume, appearance_val1,
			create_character_unk0
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING character_id`,
		int64(c.MemberNo), c.Nickname, int64(c.MountUID),
		int16(c.Shape.Parts.CharID), int16(c.Shape.Parts.MouthSerialID),
		int16(c.Shape.Parts.FaceSerialID), int16(c.Shape.Parts.Val0),
		int32(c.Shape.Appearance.Val0), int32(c.Shape.Appearance.HeadSize),
		int32(c.Shape.Appearance.Height), int32(c.Shape.Appearance.ThighVolume),
		int32(c.Shape.Appearance.LegVolume), int32(c.Shape.Appearance.Val1),
		int64(c.CreateUnk0),
	).Scan(&c.ID)
}

func (r *CharacterRepo) UpdateMount(ctx context.Context, characterID, mountUID uint32) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE characters SET mount_uid = $2 WHERE character_id = $1`,
		int64(characterID), int64(mountUID),
	)
	return err
}

// LoadWithHorses fetches a character and its horses inside one
// transaction, so a concurrent breeding insert cannot produce a torn
// view.
func (r *CharacterRepo) LoadWithHorses(ctx context.Context, characterID uint32) (*entity.Character, []command.Horse, error) {
	var (
		c      *entity.Character
		horses []command.Horse
	)
	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		var err error
		c, err = scanCharacter(tx.QueryRow(ctx,
			`SELECT `+characterColumns+` FROM characters WHERE character_id = $1`,
			int64(characterID),
		))
		if err != nil || c == nil {
			return err
		}
		horses, err = queryHorses(ctx, tx,
			`SELECT `+horseColumns+` FROM horses WHERE character_id = $1 ORDER BY uid`,
			int64(characterID),
		)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return c, horses, nil
}
