package redisstore

import (
	"context"
	"fmt"
	"sort"

	"github.com/2beens/notesbox/internal/notes"

	"github.com/go-redis/redis/v8"
)

const (
	noteKeyPrefix = "note:"
	idsSetKey     = "notes:ids"

	fieldTitle = "title"
	fieldBody  = "body"
)

// Every write touches both the note hash and the ids set, so each one runs as
// a single script and other clients never observe half of it.
var (
	// KEYS: note key, ids set; ARGV: id, title, body
	addScript = redis.NewScript(`
redis.call('HSET', KEYS[1], 'title', ARGV[2], 'body', ARGV[3])
return redis.call('SADD', KEYS[2], ARGV[1])
`)

	// HSET alone would create a missing note
	updateScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[2], ARGV[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'title', ARGV[2], 'body', ARGV[3])
return 1
`)

	deleteScript = redis.NewScript(`
redis.call('SREM', KEYS[2], ARGV[1])
return redis.call('DEL', KEYS[1])
`)

	// Note keys are derived from the set members inside the script, which
	// requires a non-clustered redis.
	// KEYS: ids set; ARGV: note key prefix
	deleteAllScript = redis.NewScript(`
local ids = redis.call('SMEMBERS', KEYS[1])
for _, id in ipairs(ids) do
	redis.call('DEL', ARGV[1] .. id)
end
return redis.call('DEL', KEYS[1])
`)

	// returns a flat id, title, body, id, title, body ... list
	listScript = redis.NewScript(`
local ids = redis.call('SMEMBERS', KEYS[1])
local res = {}
for _, id in ipairs(ids) do
	local fields = redis.call('HMGET', ARGV[1] .. id, 'title', 'body')
	if fields[1] or fields[2] then
		table.insert(res, id)
		table.insert(res, fields[1] or '')
		table.insert(res, fields[2] or '')
	end
end
return res
`)
)

var _ notes.Store = (*Store)(nil)

// Store keeps every note in a hash under note:<hex id>, with the set of
// known ids in notes:ids.
type Store struct {
	notes.ObjectIDScheme

	redisClient *redis.Client
}

func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func noteKey(hexID string) string {
	return noteKeyPrefix + hexID
}

func (s *Store) List(ctx context.Context) ([]notes.Note, error) {
	res, err := listScript.Run(ctx, s.redisClient, []string{idsSetKey}, noteKeyPrefix).Slice()
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendRedis, "list", err)
	}
	if len(res)%3 != 0 {
		return nil, notes.NewPersistenceError(notes.BackendRedis, "list", fmt.Errorf("unexpected list reply length %d", len(res)))
	}

	var allNotes []notes.Note
	for i := 0; i < len(res); i += 3 {
		hexID, _ := res[i].(string)
		title, _ := res[i+1].(string)
		body, _ := res[i+2].(string)

		oid, err := notes.ParseObjectID(hexID)
		if err != nil {
			return nil, notes.NewPersistenceError(notes.BackendRedis, "list", err)
		}
		allNotes = append(allNotes, notes.Note{
			ID:    oid,
			Title: title,
			Body:  body,
		})
	}

	// object ids sort by creation time
	sort.Slice(allNotes, func(i, j int) bool {
		return allNotes[i].ID.String() < allNotes[j].ID.String()
	})

	return allNotes, nil
}

func (s *Store) Get(ctx context.Context, id notes.ID) (*notes.Note, error) {
	oid, err := notes.AsObjectID(id)
	if err != nil {
		return nil, err
	}

	cmd := s.redisClient.HGetAll(ctx, noteKey(oid.String()))
	if err := cmd.Err(); err != nil {
		return nil, notes.NewPersistenceError(notes.BackendRedis, "get", err)
	}

	fields := cmd.Val()
	if len(fields) == 0 {
		return nil, nil
	}

	return &notes.Note{
		ID:    oid,
		Title: fields[fieldTitle],
		Body:  fields[fieldBody],
	}, nil
}

func (s *Store) Add(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	oid := notes.NewObjectID()
	hexID := oid.String()

	err := addScript.Run(ctx, s.redisClient,
		[]string{noteKey(hexID), idsSetKey},
		hexID, note.Title, note.Body,
	).Err()
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendRedis, "add", err)
	}

	note.ID = oid
	return note, nil
}

func (s *Store) Update(ctx context.Context, note *notes.Note) (*notes.Note, error) {
	oid, err := notes.AsObjectID(note.ID)
	if err != nil {
		return nil, err
	}
	hexID := oid.String()

	err = updateScript.Run(ctx, s.redisClient,
		[]string{noteKey(hexID), idsSetKey},
		hexID, note.Title, note.Body,
	).Err()
	if err != nil {
		return nil, notes.NewPersistenceError(notes.BackendRedis, "update", err)
	}

	return note, nil
}

func (s *Store) Delete(ctx context.Context, id notes.ID) error {
	oid, err := notes.AsObjectID(id)
	if err != nil {
		return err
	}
	hexID := oid.String()

	err = deleteScript.Run(ctx, s.redisClient, []string{noteKey(hexID), idsSetKey}, hexID).Err()
	if err != nil {
		return notes.NewPersistenceError(notes.BackendRedis, "delete", err)
	}

	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	err := deleteAllScript.Run(ctx, s.redisClient, []string{idsSetKey}, noteKeyPrefix).Err()
	if err != nil {
		return notes.NewPersistenceError(notes.BackendRedis, "delete_all", err)
	}

	return nil
}
