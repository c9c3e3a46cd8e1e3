package models

import "encoding/hex"

// TorrentInfo is the read-only view of a decoded .torrent file.
type TorrentInfo struct {
	Announce     string
	AnnounceList [][]string
	Name         string
	Length       int64
	PieceLength  int64
	Pieces       []Hash
	Files        []File
	InfoHash     Hash
}

type File struct {
	Length int64
	Path   []string
}

// Hash is a SHA-1 digest, used both for the info-hash and per-piece hashes.
type Hash [20]byte

// Hex returns the lowercase hexadecimal form used for display.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return string(h[:])
}
