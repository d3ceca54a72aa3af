package toolmanager

import (
	"time"

	"go.uber.org/zap"

	"github.com/Cyclone1070/offcode/internal/config"
	"github.com/Cyclone1070/offcode/internal/tool/directory"
	"github.com/Cyclone1070/offcode/internal/tool/file"
	"github.com/Cyclone1070/offcode/internal/tool/pathutil"
	"github.com/Cyclone1070/offcode/internal/tool/python"
	"github.com/Cyclone1070/offcode/internal/tool/service/executor"
	"github.com/Cyclone1070/offcode/internal/tool/service/fs"
	"github.com/Cyclone1070/offcode/internal/tool/shell"
)

// NewBuiltin registers the standard tool set confined to root, which must
// already be canonical (see pathutil.CanonicaliseRoot).
func NewBuiltin(cfg *config.Config, root string, logger *zap.Logger, metrics recorder) *ToolManager {
	osfs := fs.NewOSFileSystem(cfg.Tools.MaxFileSize)
	resolver := pathutil.NewResolver(root, osfs)
	exec := executor.NewOSCommandExecutor(
		cfg.Tools.MaxCommandOutputSize,
		time.Duration(cfg.Tools.GracefulShutdownMs)*time.Millisecond,
	)
	policy := shell.NewPolicy(cfg.Tools.AllowedPrograms, cfg.Tools.AllowedGitSubcommands)
	timeout := time.Duration(cfg.Tools.DefaultTimeoutSeconds) * time.Second

	return NewToolManager(logger, metrics,
		Adapt[file.ReadFileRequest](file.NewReadFileTool(osfs, resolver)),
		Adapt[file.WriteFileRequest](file.NewWriteFileTool(osfs, resolver, cfg.Tools.MaxFileSize)),
		Adapt[file.WriteFileRequest](file.NewAppendFileTool(osfs, resolver, cfg.Tools.MaxFileSize)),
		Adapt[directory.ListDirectoryRequest](directory.NewListDirectoryTool(osfs, resolver)),
		Adapt[directory.CreateDirectoryRequest](directory.NewCreateDirectoryTool(osfs, resolver)),
		Adapt[python.ExecutePythonRequest](python.NewExecutePythonTool(exec, resolver, osfs, cfg.Tools.PythonBinary, timeout)),
		Adapt[shell.RunCommandRequest](shell.NewRunCommandTool(exec, policy, resolver, osfs, timeout)),
	)
}
