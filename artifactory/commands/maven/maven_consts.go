package maven

const (
	gradleEnvPrefixLen = 19

	// Defaults
	DefaultArtifactId = "local-container"
	DefaultGroupId    = "com.walmartlabs.ern"

	// File Names
	gradlePropertiesFileName = "gradle.properties"
	buildGradleFileName      = "build.gradle"
	gradleWrapperUnix        = "./gradlew"
	gradleWrapperWindows     = "gradlew.bat"

	// Directories
	libDirName             = "lib"
	mavenHomeDirName       = ".m2"
	mavenRepositoryDirName = "repository"

	// Environment Variables
	envProjectPrefix = "ORG_GRADLE_PROJECT_"

	// Url Prefixes
	prefixHttp         = "http"
	prefixFile         = "file"
	homeFileTilde      = "file:~"
	homeFileSlashTilde = "file://~"

	// Keywords
	gradleTaskPublish = "publish"
	keywordUndefined  = "undefined"
	variableMarker    = '['
	placeholderSep    = "|"
)
