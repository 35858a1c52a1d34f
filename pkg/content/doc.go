// Package content stores per-platform content files (ROMs, media) and keeps
// one discoverable symlink per item for the launcher.
//
// Layout under a base directory whose base name is the content type:
//
//	{base}/{platform}/.{name}/{file}      hidden per-item storage
//	{base}/{platform}/.{platform}/{file}  shared storage for direct platforms
//	{base}/{platform}/{name}{ext}         symlink to the stored file
//
// Direct platforms (arcade, neo-geo) keep every ROM of the platform in one
// directory under its original file name, because the emulator resolves
// ROM dependencies by file name. Launchers use the stored path for those.
//
// Operations are synchronous and unlocked. Two processes working on the same
// (base, platform, name) race on the remove-then-create of the link, and a
// failure part way through (after the move, before the link) leaves the item
// stored but unlinked. Nothing is rolled back.
package content
