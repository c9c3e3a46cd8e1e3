package metainfo

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/lfarias/torrentmeta/internal/bencode"
	"github.com/lfarias/torrentmeta/internal/shared/models"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidFieldType = errors.New("field has wrong bencode type")
	ErrMalformedPieces  = errors.New("pieces is not a whole number of 20-byte hashes")
	ErrInvalidUTF8      = errors.New("announce URL is not valid UTF-8")
)

type Extractor interface {
	Extract(io.Reader) (models.TorrentInfo, error)
}

type extractor struct{}

func NewExtractor() Extractor {
	return extractor{}
}

func (extractor) Extract(torrent io.Reader) (models.TorrentInfo, error) {
	var response models.TorrentInfo
	data, err := io.ReadAll(torrent)
	if err != nil {
		return response, err
	}

	root, err := bencode.Decode(data)
	if err != nil {
		slog.Error("failed to decode torrent", slog.Any("error", err))
		return response, err
	}

	return FromValue(root)
}

// FromValue builds a TorrentInfo from an already decoded top-level
// dictionary. The info sub-dictionary is re-encoded canonically and hashed,
// so the resulting info-hash does not depend on how the source file ordered
// its keys.
func FromValue(root bencode.Value) (models.TorrentInfo, error) {
	var response models.TorrentInfo

	if root.Kind != bencode.KindDict {
		return response, fmt.Errorf("%w: top-level value is a %s, want dictionary", ErrInvalidFieldType, root.Kind)
	}

	announce, err := lookupString(root, "announce")
	if err != nil {
		return response, err
	}
	if !utf8.Valid(announce) {
		return response, ErrInvalidUTF8
	}
	response.Announce = string(announce)

	response.AnnounceList, err = readAnnounceList(root)
	if err != nil {
		return response, err
	}

	info, ok := root.Lookup("info")
	if !ok {
		return response, fmt.Errorf("%w: %q", ErrMissingField, "info")
	}
	if info.Kind != bencode.KindDict {
		return response, fmt.Errorf("%w: %q is a %s, want dictionary", ErrInvalidFieldType, "info", info.Kind)
	}

	if name, ok := info.Lookup("name"); ok {
		if name.Kind != bencode.KindString {
			return response, fmt.Errorf("%w: %q is a %s, want string", ErrInvalidFieldType, "name", name.Kind)
		}
		response.Name = string(name.Str)
	}

	response.Length, response.Files, err = readLength(info, response.Name)
	if err != nil {
		return response, err
	}

	response.PieceLength, err = lookupInteger(info, "piece length")
	if err != nil {
		return response, err
	}

	pieces, err := lookupString(info, "pieces")
	if err != nil {
		return response, err
	}
	response.Pieces, err = splitPieces(pieces)
	if err != nil {
		return response, err
	}

	response.InfoHash = sha1.Sum(bencode.Encode(info))

	return response, nil
}

// readLength resolves the total payload size. Single-file torrents carry a
// "length" key directly in the info dictionary; multi-file torrents carry a
// "files" list whose entry lengths are summed. For the single-file case a
// one-entry Files list is synthesized so callers can treat both modes alike.
func readLength(info bencode.Value, name string) (int64, []models.File, error) {
	if length, ok := info.Lookup("length"); ok {
		if length.Kind != bencode.KindInteger {
			return 0, nil, fmt.Errorf("%w: %q is a %s, want integer", ErrInvalidFieldType, "length", length.Kind)
		}
		return length.Int, []models.File{{Length: length.Int, Path: []string{name}}}, nil
	}

	files, ok := info.Lookup("files")
	if !ok {
		return 0, nil, fmt.Errorf("%w: neither %q nor %q present", ErrMissingField, "length", "files")
	}
	if files.Kind != bencode.KindList {
		return 0, nil, fmt.Errorf("%w: %q is a %s, want list", ErrInvalidFieldType, "files", files.Kind)
	}

	var total int64
	result := make([]models.File, 0, len(files.List))
	for _, entry := range files.List {
		if entry.Kind != bencode.KindDict {
			return 0, nil, fmt.Errorf("%w: %q entry is a %s, want dictionary", ErrInvalidFieldType, "files", entry.Kind)
		}
		length, err := lookupInteger(entry, "length")
		if err != nil {
			return 0, nil, err
		}
		path, err := readPath(entry)
		if err != nil {
			return 0, nil, err
		}
		total += length
		result = append(result, models.File{Length: length, Path: path})
	}
	return total, result, nil
}

func readPath(entry bencode.Value) ([]string, error) {
	path, ok := entry.Lookup("path")
	if !ok {
		return nil, nil
	}
	if path.Kind != bencode.KindList {
		return nil, fmt.Errorf("%w: %q is a %s, want list", ErrInvalidFieldType, "path", path.Kind)
	}
	parts := make([]string, 0, len(path.List))
	for _, part := range path.List {
		if part.Kind != bencode.KindString {
			return nil, fmt.Errorf("%w: %q element is a %s, want string", ErrInvalidFieldType, "path", part.Kind)
		}
		parts = append(parts, string(part.Str))
	}
	return parts, nil
}

func readAnnounceList(root bencode.Value) ([][]string, error) {
	list, ok := root.Lookup("announce-list")
	if !ok {
		return nil, nil
	}
	if list.Kind != bencode.KindList {
		return nil, fmt.Errorf("%w: %q is a %s, want list", ErrInvalidFieldType, "announce-list", list.Kind)
	}
	tiers := make([][]string, 0, len(list.List))
	for _, tier := range list.List {
		if tier.Kind != bencode.KindList {
			return nil, fmt.Errorf("%w: %q tier is a %s, want list", ErrInvalidFieldType, "announce-list", tier.Kind)
		}
		urls := make([]string, 0, len(tier.List))
		for _, u := range tier.List {
			if u.Kind != bencode.KindString {
				return nil, fmt.Errorf("%w: %q entry is a %s, want string", ErrInvalidFieldType, "announce-list", u.Kind)
			}
			urls = append(urls, string(u.Str))
		}
		tiers = append(tiers, urls)
	}
	return tiers, nil
}

func splitPieces(pieces []byte) ([]models.Hash, error) {
	if len(pieces)%sha1.Size != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrMalformedPieces, len(pieces))
	}
	hashes := make([]models.Hash, 0, len(pieces)/sha1.Size)
	for i := 0; i < len(pieces); i += sha1.Size {
		hashes = append(hashes, models.Hash(pieces[i:i+sha1.Size]))
	}
	return hashes, nil
}

func lookupString(dict bencode.Value, key string) ([]byte, error) {
	v, ok := dict.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	if v.Kind != bencode.KindString {
		return nil, fmt.Errorf("%w: %q is a %s, want string", ErrInvalidFieldType, key, v.Kind)
	}
	return v.Str, nil
}

func lookupInteger(dict bencode.Value, key string) (int64, error) {
	v, ok := dict.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	if v.Kind != bencode.KindInteger {
		return 0, fmt.Errorf("%w: %q is a %s, want integer", ErrInvalidFieldType, key, v.Kind)
	}
	return v.Int, nil
}
