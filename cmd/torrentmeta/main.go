package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/lfarias/torrentmeta/internal/bencode"
	"github.com/lfarias/torrentmeta/internal/metainfo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s decode <bencoded-string> | info <torrent-file>\n", os.Args[0])
		os.Exit(2)
	}

	switch command := os.Args[1]; command {
	case "decode":
		if err := runDecode(os.Args[2]); err != nil {
			logger.Error("failed to decode value", slog.Any("error", err))
			os.Exit(1)
		}
	case "info":
		if err := runInfo(os.Args[2]); err != nil {
			logger.Error("failed to read torrent metadata", slog.Any("error", err))
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		os.Exit(2)
	}
}

func runDecode(input string) error {
	v, err := bencode.Decode([]byte(input))
	if err != nil {
		return err
	}
	out, err := json.Marshal(v.Interface())
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := metainfo.NewExtractor().Extract(f)
	if err != nil {
		return err
	}

	fmt.Printf("Tracker URL: %s\n", info.Announce)
	fmt.Printf("Length: %d\n", info.Length)
	fmt.Printf("Info Hash: %s\n", info.InfoHash.Hex())
	fmt.Printf("Piece Length: %d\n", info.PieceLength)
	fmt.Println("Piece Hashes:")
	for _, piece := range info.Pieces {
		fmt.Println(piece.Hex())
	}
	return nil
}
